package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Sahithi-Sritha/FSAD-Project/config"
	"github.com/Sahithi-Sritha/FSAD-Project/models"
)

type FoodService struct{}

func NewFoodService() *FoodService { return &FoodService{} }

func (s *FoodService) ListFoods() ([]models.FoodItem, error) {
	var foods []models.FoodItem
	err := config.DB.
		Preload("Profile.Micronutrients").
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&foods).Error
	return foods, err
}

func (s *FoodService) Search(query string) ([]models.FoodItem, error) {
	var foods []models.FoodItem
	err := config.DB.
		Preload("Profile.Micronutrients").
		Where("is_active = ? AND LOWER(name) LIKE ?", true, "%"+strings.ToLower(query)+"%").
		Order("name ASC").
		Find(&foods).Error
	return foods, err
}

func (s *FoodService) GetFood(id uint) (*models.FoodItem, error) {
	var food models.FoodItem
	err := config.DB.
		Preload("Profile.Micronutrients").
		First(&food, id).Error
	if err != nil {
		return nil, err
	}
	return &food, nil
}

type MicronutrientInput struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type CustomFoodRequest struct {
	Name             string               `json:"name" binding:"required"`
	Description      string               `json:"description"`
	Category         string               `json:"category"`
	ServingSizeGrams float64              `json:"serving_size_grams"`
	Calories         float64              `json:"calories"`
	Protein          float64              `json:"protein"`
	Carbohydrates    float64              `json:"carbohydrates"`
	Fat              float64              `json:"fat"`
	Fiber            float64              `json:"fiber"`
	Micronutrients   []MicronutrientInput `json:"micronutrients"`
}

// CreateCustomFood adds a user-defined catalog entry. Nutrient amounts
// must be non-negative; a zero serving size is allowed and treated as
// 100g by the aggregator.
func (s *FoodService) CreateCustomFood(req CustomFoodRequest) (*models.FoodItem, error) {
	if req.ServingSizeGrams < 0 {
		return nil, errors.New("serving size must not be negative")
	}
	for _, v := range []float64{req.Calories, req.Protein, req.Carbohydrates, req.Fat, req.Fiber} {
		if v < 0 {
			return nil, errors.New("nutrient amounts must not be negative")
		}
	}
	for _, m := range req.Micronutrients {
		if m.Amount < 0 {
			return nil, fmt.Errorf("micronutrient %q amount must not be negative", m.Name)
		}
	}

	food := &models.FoodItem{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		IsCustom:    true,
		IsActive:    true,
		Profile: models.NutrientProfile{
			ServingSizeGrams: req.ServingSizeGrams,
			Calories:         req.Calories,
			Protein:          req.Protein,
			Carbohydrates:    req.Carbohydrates,
			Fat:              req.Fat,
			Fiber:            req.Fiber,
		},
	}
	for _, m := range req.Micronutrients {
		food.Profile.Micronutrients = append(food.Profile.Micronutrients, models.Micronutrient{
			Name:   m.Name,
			Amount: m.Amount,
			Unit:   m.Unit,
		})
	}

	if err := config.DB.Create(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}
