// services/chart_service.go
package services

import (
	"time"

	"github.com/Sahithi-Sritha/FSAD-Project/nutrition"
)

type ChartService struct {
	entries *EntryService
}

func NewChartService(entries *EntryService) *ChartService {
	return &ChartService{entries: entries}
}

// ChartPoint is one day on an intake chart. Days without entries are
// present with zeros so the series has no gaps.
type ChartPoint struct {
	Date      string  `json:"date"`
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
	Fiber     float64 `json:"fiber"`
	MealCount int     `json:"mealCount"`
}

// DailySeries returns per-day intake for the trailing N days including
// today. Days is clamped to 1..90.
func (s *ChartService) DailySeries(userID uint, days int) ([]ChartPoint, []nutrition.Warning, error) {
	if days < 1 {
		days = 1
	}
	if days > 90 {
		days = 90
	}

	end := dayStartUTC(time.Now()).Add(24 * time.Hour)
	start := end.Add(-time.Duration(days) * 24 * time.Hour)

	entries, err := s.entries.ListEntriesByDateRange(userID, start, end)
	if err != nil {
		return nil, nil, err
	}

	grouped, warnings, err := nutrition.AggregateGrouped(entries, foodIndex(entries), nutrition.GroupDay, nutrition.Options{})
	if err != nil {
		return nil, nil, err
	}

	points := make([]ChartPoint, 0, days)
	for d := start; d.Before(end); d = d.Add(24 * time.Hour) {
		key := d.Format("2006-01-02")
		point := ChartPoint{Date: key}
		if t, ok := grouped[key]; ok {
			point.Calories = t.Calories
			point.Protein = t.Nutrients[nutrition.NutrientProtein]
			point.Carbs = t.Nutrients[nutrition.NutrientCarbs]
			point.Fat = t.Nutrients[nutrition.NutrientFat]
			point.Fiber = t.Nutrients[nutrition.NutrientFiber]
			point.MealCount = t.EntryCount
		}
		points = append(points, point)
	}
	if warnings == nil {
		warnings = []nutrition.Warning{}
	}
	return points, warnings, nil
}

// MealTypeBreakdown aggregates today's intake per meal type.
func (s *ChartService) MealTypeBreakdown(userID uint) (map[string]nutrition.Totals, []nutrition.Warning, error) {
	entries, err := s.entries.ListTodaysEntries(userID)
	if err != nil {
		return nil, nil, err
	}
	return nutrition.AggregateGrouped(entries, foodIndex(entries), nutrition.GroupMealType, nutrition.Options{})
}
