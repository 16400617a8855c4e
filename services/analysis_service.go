// services/analysis_service.go
package services

import (
	"time"

	"github.com/Sahithi-Sritha/FSAD-Project/nutrition"
)

type AnalysisService struct {
	entries *EntryService
	goals   *GoalService
}

func NewAnalysisService(entries *EntryService, goals *GoalService) *AnalysisService {
	return &AnalysisService{entries: entries, goals: goals}
}

// AnalysisResponse is the full picture for one period: what was eaten,
// how it scores against the goals, and what to change.
type AnalysisResponse struct {
	Period          string                     `json:"period"`
	TotalCalories   float64                    `json:"totalCalories"`
	MealCount       int                        `json:"mealCount"`
	Calories        nutrition.NutrientScore    `json:"calories"`
	Macronutrients  []nutrition.NutrientScore  `json:"macronutrients"`
	Micronutrients  []nutrition.NutrientScore  `json:"micronutrients"`
	OverallScore    *int                       `json:"overallScore"`
	Recommendations []nutrition.Recommendation `json:"recommendations"`
	Warnings        []nutrition.Warning        `json:"warnings"`
}

// AnalyzeToday scores today's intake (UTC day) against the user's goals.
func (s *AnalysisService) AnalyzeToday(userID uint) (*AnalysisResponse, error) {
	entries, err := s.entries.ListTodaysEntries(userID)
	if err != nil {
		return nil, err
	}

	totals, warnings, err := nutrition.Aggregate(entries, foodIndex(entries), nutrition.Options{})
	if err != nil {
		return nil, err
	}
	return s.respond("today", totals, warnings, userID)
}

// AnalyzeWeek scores the trailing 7 days as a daily average, so the
// result is comparable with the daily goal set.
func (s *AnalysisService) AnalyzeWeek(userID uint) (*AnalysisResponse, error) {
	end := dayStartUTC(time.Now()).Add(24 * time.Hour)
	start := end.Add(-7 * 24 * time.Hour)

	entries, err := s.entries.ListEntriesByDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}

	totals, warnings, err := nutrition.Aggregate(entries, foodIndex(entries), nutrition.Options{})
	if err != nil {
		return nil, err
	}
	return s.respond("week", nutrition.ScaleDaily(totals, 7), warnings, userID)
}

func (s *AnalysisService) respond(period string, totals nutrition.Totals, warnings []nutrition.Warning, userID uint) (*AnalysisResponse, error) {
	goals, err := s.goals.GetGoals(userID)
	if err != nil {
		return nil, err
	}

	report, err := nutrition.Evaluate(totals, goals)
	if err != nil {
		return nil, err
	}

	if warnings == nil {
		warnings = []nutrition.Warning{}
	}
	return &AnalysisResponse{
		Period:          period,
		TotalCalories:   totals.Calories,
		MealCount:       report.EntryCount,
		Calories:        report.Calories,
		Macronutrients:  report.Macros,
		Micronutrients:  report.Micros,
		OverallScore:    report.OverallScore,
		Recommendations: nutrition.Recommend(report, nutrition.RecommendOptions{}),
		Warnings:        warnings,
	}, nil
}
