package nutrition

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Sahithi-Sritha/FSAD-Project/models"
)

func food(id uint, name string, serving, cal, prot, carbs, fat, fiber float64, micros ...models.Micronutrient) models.FoodItem {
	return models.FoodItem{
		Model: gorm.Model{ID: id},
		Name:  name,
		Profile: models.NutrientProfile{
			ServingSizeGrams: serving,
			Calories:         cal,
			Protein:          prot,
			Carbohydrates:    carbs,
			Fat:              fat,
			Fiber:            fiber,
			Micronutrients:   micros,
		},
	}
}

func entry(id, foodID uint, grams float64, mealType string, at time.Time) models.DietaryEntry {
	return models.DietaryEntry{
		Model:        gorm.Model{ID: id},
		FoodItemID:   foodID,
		PortionGrams: grams,
		MealType:     mealType,
		ConsumedAt:   at,
	}
}

func TestAggregateScaling(t *testing.T) {
	foods := map[uint]models.FoodItem{
		1: food(1, "Chicken Breast", 100, 200, 31, 0, 3.6, 0),
	}
	entries := []models.DietaryEntry{
		entry(1, 1, 150, models.MealLunch, time.Now()),
	}

	totals, warnings, err := Aggregate(entries, foods, Options{})
	assert.NoError(t, err)
	assert.Empty(t, warnings)
	assert.InDelta(t, 300, totals.Calories, 1e-9)
	assert.InDelta(t, 46.5, totals.Nutrients[NutrientProtein], 1e-9)
	assert.Equal(t, 1, totals.EntryCount)
}

func TestAggregateServingSizeFallback(t *testing.T) {
	// missing serving size behaves as 100g, never NaN/Inf
	foods := map[uint]models.FoodItem{
		1: food(1, "Mystery Food", 0, 50, 0, 0, 0, 0),
	}
	entries := []models.DietaryEntry{
		entry(1, 1, 100, models.MealSnack, time.Now()),
	}

	totals, warnings, err := Aggregate(entries, foods, Options{})
	assert.NoError(t, err)
	assert.InDelta(t, 50, totals.Calories, 1e-9)
	if assert.Len(t, warnings, 1) {
		assert.Equal(t, "serving_size_fallback", warnings[0].Code)
	}
}

func TestAggregateUnknownFoodSkipped(t *testing.T) {
	foods := map[uint]models.FoodItem{
		1: food(1, "Apple", 100, 95, 0.5, 25, 0.3, 4.4),
	}
	entries := []models.DietaryEntry{
		entry(1, 1, 100, models.MealBreakfast, time.Now()),
		entry(2, 99, 100, models.MealBreakfast, time.Now()), // removed from catalog
	}

	totals, warnings, err := Aggregate(entries, foods, Options{})
	assert.NoError(t, err)
	assert.Equal(t, 1, totals.EntryCount)
	assert.InDelta(t, 95, totals.Calories, 1e-9)
	if assert.Len(t, warnings, 1) {
		assert.Equal(t, "unknown_food", warnings[0].Code)
		assert.Equal(t, uint(2), warnings[0].EntryID)
	}
}

func TestAggregateInvalidPortion(t *testing.T) {
	foods := map[uint]models.FoodItem{
		1: food(1, "Apple", 100, 95, 0.5, 25, 0.3, 4.4),
	}
	entries := []models.DietaryEntry{
		entry(1, 1, -50, models.MealSnack, time.Now()),
	}

	_, _, err := Aggregate(entries, foods, Options{})
	assert.Error(t, err)
}

func TestAggregateOrderIndependent(t *testing.T) {
	foods := map[uint]models.FoodItem{
		1: food(1, "Banana", 100, 105, 1.3, 27, 0.4, 3.1,
			models.Micronutrient{Name: "Potassium", Amount: 422, Unit: "mg"}),
		2: food(2, "Milk", 100, 149, 7.7, 11.7, 7.9, 0,
			models.Micronutrient{Name: "Calcium", Amount: 276, Unit: "mg"}),
		3: food(3, "Almonds", 28, 164, 6, 6, 14, 3.5),
	}
	now := time.Now()
	entries := []models.DietaryEntry{
		entry(1, 1, 118, models.MealBreakfast, now),
		entry(2, 2, 244, models.MealBreakfast, now.Add(time.Minute)),
		entry(3, 3, 28, models.MealSnack, now.Add(2*time.Hour)),
		entry(4, 1, 59, models.MealSnack, now.Add(3*time.Hour)),
	}

	base, _, err := Aggregate(entries, foods, Options{})
	assert.NoError(t, err)

	for i := 0; i < 10; i++ {
		shuffled := append([]models.DietaryEntry{}, entries...)
		rand.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, _, err := Aggregate(shuffled, foods, Options{})
		assert.NoError(t, err)
		assert.InDelta(t, base.Calories, got.Calories, 1e-9)
		assert.Equal(t, base.EntryCount, got.EntryCount)
		for name, amount := range base.Nutrients {
			assert.InDelta(t, amount, got.Nutrients[name], 1e-9, name)
		}
	}
}

func TestAggregateIdempotent(t *testing.T) {
	foods := map[uint]models.FoodItem{
		1: food(1, "Brown Rice", 100, 216, 5, 45, 1.8, 3.5),
	}
	entries := []models.DietaryEntry{
		entry(1, 1, 195, models.MealDinner, time.Now()),
	}

	first, _, err := Aggregate(entries, foods, Options{})
	assert.NoError(t, err)
	second, _, err := Aggregate(entries, foods, Options{})
	assert.NoError(t, err)

	assert.InDelta(t, first.Calories, second.Calories, 1e-9)
	assert.Equal(t, first.EntryCount, second.EntryCount)
	for name, amount := range first.Nutrients {
		assert.InDelta(t, amount, second.Nutrients[name], 1e-9, name)
	}
}

func TestAggregateDoesNotMutateInputs(t *testing.T) {
	foods := map[uint]models.FoodItem{
		1: food(1, "Egg", 50, 78, 6.3, 0.6, 5.3, 0),
	}
	entries := []models.DietaryEntry{
		entry(1, 1, 100, models.MealBreakfast, time.Now()),
	}
	portionBefore := entries[0].PortionGrams
	caloriesBefore := foods[1].Profile.Calories

	_, _, err := Aggregate(entries, foods, Options{})
	assert.NoError(t, err)
	assert.Equal(t, portionBefore, entries[0].PortionGrams)
	assert.Equal(t, caloriesBefore, foods[1].Profile.Calories)
}

func TestAggregateGroupedByDay(t *testing.T) {
	foods := map[uint]models.FoodItem{
		1: food(1, "Apple", 100, 95, 0.5, 25, 0.3, 4.4),
	}
	day1 := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 2, 20, 0, 0, 0, time.UTC)
	entries := []models.DietaryEntry{
		entry(1, 1, 100, models.MealBreakfast, day1),
		entry(2, 1, 100, models.MealDinner, day1.Add(10*time.Hour)),
		entry(3, 1, 200, models.MealDinner, day2),
	}

	byDay, _, err := AggregateGrouped(entries, foods, GroupDay, Options{})
	assert.NoError(t, err)
	assert.Len(t, byDay, 2)
	assert.InDelta(t, 190, byDay["2024-03-01"].Calories, 1e-9)
	assert.InDelta(t, 190, byDay["2024-03-02"].Calories, 1e-9)
}

func TestAggregateGroupedDayBoundaryUsesLocation(t *testing.T) {
	foods := map[uint]models.FoodItem{
		1: food(1, "Apple", 100, 95, 0.5, 25, 0.3, 4.4),
	}
	// 23:30 UTC on March 1st is already March 2nd in UTC+5
	at := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)
	entries := []models.DietaryEntry{entry(1, 1, 100, models.MealDinner, at)}

	utc, _, err := AggregateGrouped(entries, foods, GroupDay, Options{})
	assert.NoError(t, err)
	assert.Contains(t, utc, "2024-03-01")

	east := time.FixedZone("UTC+5", 5*3600)
	shifted, _, err := AggregateGrouped(entries, foods, GroupDay, Options{Location: east})
	assert.NoError(t, err)
	assert.Contains(t, shifted, "2024-03-02")
}

func TestAggregateGroupedByMealType(t *testing.T) {
	foods := map[uint]models.FoodItem{
		1: food(1, "Apple", 100, 95, 0.5, 25, 0.3, 4.4),
	}
	now := time.Now()
	entries := []models.DietaryEntry{
		entry(1, 1, 100, models.MealBreakfast, now),
		entry(2, 1, 100, models.MealLunch, now),
		entry(3, 1, 100, models.MealLunch, now),
	}

	byMeal, _, err := AggregateGrouped(entries, foods, GroupMealType, Options{})
	assert.NoError(t, err)
	assert.Equal(t, 1, byMeal[models.MealBreakfast].EntryCount)
	assert.Equal(t, 2, byMeal[models.MealLunch].EntryCount)

	combined, _, err := AggregateGrouped(entries, foods, GroupDayMealType, Options{})
	assert.NoError(t, err)
	day := now.UTC().Format("2006-01-02")
	assert.Equal(t, 2, combined[day+"/"+models.MealLunch].EntryCount)
}

func TestAggregateGroupedRejectsUnknownMode(t *testing.T) {
	_, _, err := AggregateGrouped(nil, nil, "hour", Options{})
	assert.Error(t, err)
}

func TestScaleDaily(t *testing.T) {
	foods := map[uint]models.FoodItem{
		1: food(1, "Apple", 100, 95, 0.5, 25, 0.3, 4.4),
	}
	entries := []models.DietaryEntry{
		entry(1, 1, 100, models.MealBreakfast, time.Now()),
		entry(2, 1, 100, models.MealDinner, time.Now()),
	}
	totals, _, err := Aggregate(entries, foods, Options{})
	assert.NoError(t, err)

	avg := ScaleDaily(totals, 2)
	assert.InDelta(t, 95, avg.Calories, 1e-9)
	assert.InDelta(t, 0.5, avg.Nutrients[NutrientProtein], 1e-9)
	assert.Equal(t, 2, avg.EntryCount)
}
