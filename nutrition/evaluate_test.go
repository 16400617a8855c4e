package nutrition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Sahithi-Sritha/FSAD-Project/models"
)

func maintenanceGoals() GoalSet {
	return GoalSet{CalorieGoal: 2000, ProteinGoal: 50, CarbsGoal: 300, FatGoal: 65, FiberGoal: 25}
}

func totalsWith(entryCount int, calories float64, nutrients map[string]float64) Totals {
	t := newTotals()
	t.EntryCount = entryCount
	t.Calories = calories
	for k, v := range nutrients {
		t.Nutrients[k] = v
	}
	return t
}

func findScore(scores []NutrientScore, name string) (NutrientScore, bool) {
	for _, s := range scores {
		if s.Name == name {
			return s, true
		}
	}
	return NutrientScore{}, false
}

func TestStatusThresholds(t *testing.T) {
	assert.Equal(t, StatusLow, statusFor(79.999))
	assert.Equal(t, StatusAdequate, statusFor(80.0))
	assert.Equal(t, StatusAdequate, statusFor(99.999))
	assert.Equal(t, StatusSufficient, statusFor(100.0))
	assert.Equal(t, StatusLow, statusFor(50.0))
	assert.Equal(t, StatusDeficient, statusFor(49.999))
}

func TestEvaluateEmptyTotals(t *testing.T) {
	report, err := Evaluate(Totals{}, maintenanceGoals())
	assert.NoError(t, err)
	assert.Nil(t, report.OverallScore)
	assert.Equal(t, StatusUnknown, report.Calories.Status)
	for _, s := range report.Macros {
		assert.Equal(t, StatusUnknown, s.Status)
	}
	for _, s := range report.Micros {
		assert.Equal(t, StatusUnknown, s.Status)
	}
}

func TestEvaluateRejectsNonPositiveGoals(t *testing.T) {
	goals := maintenanceGoals()
	goals.ProteinGoal = 0
	_, err := Evaluate(totalsWith(1, 500, nil), goals)
	assert.Error(t, err)

	goals = maintenanceGoals()
	goals.CalorieGoal = -100
	_, err = Evaluate(totalsWith(1, 500, nil), goals)
	assert.Error(t, err)
}

func TestEvaluateScoreCapsExcess(t *testing.T) {
	// protein at 250% must contribute 100, not 250
	goals := GoalSet{CalorieGoal: 2000, ProteinGoal: 50, CarbsGoal: 100, FatGoal: 50, FiberGoal: 20}
	totals := totalsWith(3, 1000, map[string]float64{
		NutrientProtein: 125, // 250%
		NutrientCarbs:   100, // 100%
		NutrientFat:     50,  // 100%
		NutrientFiber:   20,  // 100%
	})

	report, err := Evaluate(totals, goals)
	assert.NoError(t, err)

	protein, ok := findScore(report.Macros, NutrientProtein)
	assert.True(t, ok)
	assert.InDelta(t, 250, protein.Percentage, 1e-9) // uncapped for classification
	assert.Equal(t, StatusSufficient, protein.Status)

	// 4 macros at (capped) 100 each, 11 micros at 0 → 400/15 ≈ 27
	assert.NotNil(t, report.OverallScore)
	assert.Equal(t, 27, *report.OverallScore)
}

func TestEvaluateCaloriesExcludedFromScore(t *testing.T) {
	goals := GoalSet{CalorieGoal: 2000, ProteinGoal: 50, CarbsGoal: 100, FatGoal: 50, FiberGoal: 20}
	base := totalsWith(1, 200, map[string]float64{
		NutrientProtein: 50, NutrientCarbs: 100, NutrientFat: 50, NutrientFiber: 20,
	})
	inflated := totalsWith(1, 6000, map[string]float64{
		NutrientProtein: 50, NutrientCarbs: 100, NutrientFat: 50, NutrientFiber: 20,
	})

	r1, err := Evaluate(base, goals)
	assert.NoError(t, err)
	r2, err := Evaluate(inflated, goals)
	assert.NoError(t, err)

	assert.Equal(t, *r1.OverallScore, *r2.OverallScore)
	assert.Equal(t, StatusDeficient, r1.Calories.Status)
	assert.Equal(t, StatusSufficient, r2.Calories.Status)
}

func TestEvaluateUnknownNutrientExcluded(t *testing.T) {
	goals := maintenanceGoals()
	totals := totalsWith(1, 500, map[string]float64{
		NutrientProtein: 25,
		"Selenium":      40, // no daily reference → UNKNOWN, not Inf
	})

	report, err := Evaluate(totals, goals)
	assert.NoError(t, err)

	selenium, ok := findScore(report.Micros, "Selenium")
	assert.True(t, ok)
	assert.Equal(t, StatusUnknown, selenium.Status)
	assert.Zero(t, selenium.Percentage)
}

func TestEvaluateMicronutrientStatuses(t *testing.T) {
	goals := maintenanceGoals()
	totals := totalsWith(2, 1000, map[string]float64{
		"Vitamin C": 90,   // 100% → SUFFICIENT
		"Calcium":   850,  // 85% → ADEQUATE
		"Iron":      10,   // ~55% → LOW
		"Zinc":      2,    // ~18% → DEFICIENT
		"Potassium": 3500, // 100% → SUFFICIENT
	})

	report, err := Evaluate(totals, goals)
	assert.NoError(t, err)

	expect := map[string]Status{
		"Vitamin C": StatusSufficient,
		"Calcium":   StatusAdequate,
		"Iron":      StatusLow,
		"Zinc":      StatusDeficient,
		"Potassium": StatusSufficient,
		"Vitamin A": StatusDeficient, // nothing consumed
	}
	for name, want := range expect {
		s, ok := findScore(report.Micros, name)
		assert.True(t, ok, name)
		assert.Equal(t, want, s.Status, name)
	}
}

func TestAggregateThenEvaluateEndToEnd(t *testing.T) {
	foods := map[uint]models.FoodItem{
		1: food(1, "Chicken Breast", 100, 165, 31, 0, 3.6, 0),
	}
	entries := []models.DietaryEntry{
		entry(1, 1, 200, models.MealLunch, time.Date(2024, 5, 10, 12, 30, 0, 0, time.UTC)),
	}

	totals, warnings, err := Aggregate(entries, foods, Options{})
	assert.NoError(t, err)
	assert.Empty(t, warnings)
	assert.InDelta(t, 330, totals.Calories, 1e-9)
	assert.InDelta(t, 62, totals.Nutrients[NutrientProtein], 1e-9)

	report, err := Evaluate(totals, maintenanceGoals())
	assert.NoError(t, err)

	protein, ok := findScore(report.Macros, NutrientProtein)
	assert.True(t, ok)
	assert.InDelta(t, 124, protein.Percentage, 1e-9)
	assert.Equal(t, StatusSufficient, protein.Status)

	assert.InDelta(t, 16.5, report.Calories.Percentage, 1e-9)
	assert.Equal(t, StatusDeficient, report.Calories.Status)
	assert.NotNil(t, report.OverallScore)
}
