// services/goal_service.go
package services

import (
	"errors"

	"github.com/Sahithi-Sritha/FSAD-Project/config"
	"github.com/Sahithi-Sritha/FSAD-Project/models"
	"github.com/Sahithi-Sritha/FSAD-Project/nutrition"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GoalService struct{}

func NewGoalService() *GoalService { return &GoalService{} }

// GetGoals returns the user's stored targets, or the maintenance
// defaults when none have been set yet.
func (s *GoalService) GetGoals(userID uint) (nutrition.GoalSet, error) {
	var goal models.NutritionGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nutrition.DefaultGoals(), nil
	}
	if err != nil {
		return nutrition.GoalSet{}, err
	}
	return goalSetOf(goal), nil
}

type GoalRequest struct {
	CalorieGoal float64 `json:"calorieGoal" binding:"required"`
	ProteinGoal float64 `json:"proteinGoal" binding:"required"`
	CarbsGoal   float64 `json:"carbsGoal" binding:"required"`
	FatGoal     float64 `json:"fatGoal" binding:"required"`
	FiberGoal   float64 `json:"fiberGoal" binding:"required"`
}

func (s *GoalService) UpsertGoals(userID uint, req GoalRequest) (nutrition.GoalSet, error) {
	for _, v := range []float64{req.CalorieGoal, req.ProteinGoal, req.CarbsGoal, req.FatGoal, req.FiberGoal} {
		if v <= 0 {
			return nutrition.GoalSet{}, errors.New("all goals must be positive")
		}
	}

	goal := models.NutritionGoal{
		UserID:      userID,
		CalorieGoal: req.CalorieGoal,
		ProteinGoal: req.ProteinGoal,
		CarbsGoal:   req.CarbsGoal,
		FatGoal:     req.FatGoal,
		FiberGoal:   req.FiberGoal,
	}
	err := config.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"calorie_goal", "protein_goal", "carbs_goal", "fat_goal", "fiber_goal",
		}),
	}).Create(&goal).Error
	if err != nil {
		return nutrition.GoalSet{}, err
	}
	return goalSetOf(goal), nil
}

// SuggestGoals derives a goal set from the user's stored biometrics.
// It never persists anything; the user confirms via UpsertGoals.
func (s *GoalService) SuggestGoals(userID uint) (nutrition.GoalSet, string, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nutrition.GoalSet{}, "", err
	}

	goals, err := nutrition.DeriveGoalsFromBiometrics(nutrition.BiometricProfile{
		WeightKg: user.WeightKg,
		HeightCm: user.HeightCm,
	})
	if err != nil {
		return nutrition.GoalSet{}, "", err
	}

	category := ""
	if bmi, err := nutrition.CalculateBMI(user.WeightKg, user.HeightCm); err == nil {
		category = nutrition.ClassifyBMI(bmi)
	}
	return goals, category, nil
}

func goalSetOf(g models.NutritionGoal) nutrition.GoalSet {
	return nutrition.GoalSet{
		CalorieGoal: g.CalorieGoal,
		ProteinGoal: g.ProteinGoal,
		CarbsGoal:   g.CarbsGoal,
		FatGoal:     g.FatGoal,
		FiberGoal:   g.FiberGoal,
	}
}
