// services/entry_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Sahithi-Sritha/FSAD-Project/config"
	"github.com/Sahithi-Sritha/FSAD-Project/models"

	"gorm.io/gorm"
)

type EntryService struct{}

func NewEntryService() *EntryService { return &EntryService{} }

// EntryRequest carries one meal to log. Portion is given either in grams
// or in servings of the food; servings are normalized to grams here so
// the aggregation core only ever sees grams.
type EntryRequest struct {
	FoodItemID      uint      `json:"food_item_id" binding:"required"`
	PortionGrams    float64   `json:"portion_grams"`
	PortionServings float64   `json:"portion_servings"`
	MealType        string    `json:"meal_type" binding:"required"`
	ConsumedAt      time.Time `json:"consumed_at"`
}

func validMealType(t string) bool {
	switch t {
	case models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack:
		return true
	}
	return false
}

func (s *EntryService) LogEntry(userID uint, req EntryRequest) (*models.DietaryEntry, error) {
	if !validMealType(req.MealType) {
		return nil, fmt.Errorf("invalid meal type %q", req.MealType)
	}
	if req.PortionGrams < 0 || req.PortionServings < 0 {
		return nil, errors.New("portion must not be negative")
	}
	if (req.PortionGrams > 0) == (req.PortionServings > 0) {
		return nil, errors.New("exactly one of portion_grams or portion_servings must be positive")
	}

	var food models.FoodItem
	if err := config.DB.
		Preload("Profile").
		Where("id = ? AND is_active = ?", req.FoodItemID, true).
		First(&food).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("food item %d not found", req.FoodItemID)
		}
		return nil, err
	}

	grams := req.PortionGrams
	if grams == 0 {
		serving := food.Profile.ServingSizeGrams
		if serving <= 0 {
			serving = 100
		}
		grams = req.PortionServings * serving
	}

	consumedAt := req.ConsumedAt
	if consumedAt.IsZero() {
		consumedAt = time.Now().UTC()
	}

	entry := &models.DietaryEntry{
		UserID:       userID,
		FoodItemID:   food.ID,
		PortionGrams: grams,
		MealType:     req.MealType,
		ConsumedAt:   consumedAt,
	}
	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}

	// reload with the food snapshot for the response
	var populated models.DietaryEntry
	if err := config.DB.
		Preload("FoodItem.Profile.Micronutrients").
		First(&populated, entry.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

func (s *EntryService) ListEntries(userID uint) ([]models.DietaryEntry, error) {
	var entries []models.DietaryEntry
	err := config.DB.
		Preload("FoodItem.Profile.Micronutrients").
		Where("user_id = ?", userID).
		Order("consumed_at DESC").
		Find(&entries).Error
	return entries, err
}

func (s *EntryService) ListEntriesByDateRange(userID uint, from, to time.Time) ([]models.DietaryEntry, error) {
	var entries []models.DietaryEntry
	err := config.DB.
		Preload("FoodItem.Profile.Micronutrients").
		Where("user_id = ? AND consumed_at >= ? AND consumed_at < ?", userID, from, to).
		Order("consumed_at DESC").
		Find(&entries).Error
	return entries, err
}

// ListTodaysEntries uses UTC day boundaries; "today" must not depend on
// where the server happens to run.
func (s *EntryService) ListTodaysEntries(userID uint) ([]models.DietaryEntry, error) {
	start := dayStartUTC(time.Now())
	return s.ListEntriesByDateRange(userID, start, start.Add(24*time.Hour))
}

// Entries are never edited in place; a correction is delete + recreate.
func (s *EntryService) DeleteEntry(userID, entryID uint) error {
	res := config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.DietaryEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("entry %d not found", entryID)
	}
	return nil
}

func dayStartUTC(t time.Time) time.Time {
	tt := t.UTC()
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.UTC)
}

// foodIndex builds the id → food lookup the aggregator wants from
// preloaded entries.
func foodIndex(entries []models.DietaryEntry) map[uint]models.FoodItem {
	idx := make(map[uint]models.FoodItem, len(entries))
	for _, e := range entries {
		if e.FoodItem.ID != 0 {
			idx[e.FoodItem.ID] = e.FoodItem
		}
	}
	return idx
}
