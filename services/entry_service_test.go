package services

import (
	"testing"

	"github.com/Sahithi-Sritha/FSAD-Project/models"

	"github.com/stretchr/testify/assert"
)

// Validation must reject bad portions before anything touches the
// database; a negative portion that slips through poisons every later
// aggregation for that user.

func TestLogEntryRejectsNegativePortions(t *testing.T) {
	svc := NewEntryService()

	_, err := svc.LogEntry(1, EntryRequest{
		FoodItemID: 1, PortionGrams: -5, PortionServings: 2, MealType: models.MealLunch,
	})
	assert.ErrorContains(t, err, "negative")

	_, err = svc.LogEntry(1, EntryRequest{
		FoodItemID: 1, PortionGrams: -5, MealType: models.MealLunch,
	})
	assert.ErrorContains(t, err, "negative")

	_, err = svc.LogEntry(1, EntryRequest{
		FoodItemID: 1, PortionServings: -1, MealType: models.MealBreakfast,
	})
	assert.ErrorContains(t, err, "negative")
}

func TestLogEntryRequiresExactlyOnePortion(t *testing.T) {
	svc := NewEntryService()

	_, err := svc.LogEntry(1, EntryRequest{
		FoodItemID: 1, MealType: models.MealDinner,
	})
	assert.ErrorContains(t, err, "exactly one")

	_, err = svc.LogEntry(1, EntryRequest{
		FoodItemID: 1, PortionGrams: 100, PortionServings: 1, MealType: models.MealDinner,
	})
	assert.ErrorContains(t, err, "exactly one")
}

func TestLogEntryRejectsUnknownMealType(t *testing.T) {
	_, err := NewEntryService().LogEntry(1, EntryRequest{
		FoodItemID: 1, PortionGrams: 100, MealType: "BRUNCH",
	})
	assert.ErrorContains(t, err, "invalid meal type")
}
