package models

import (
    "time"

    "gorm.io/gorm"
)

// Meal type labels stored on entries.
const (
    MealBreakfast = "BREAKFAST"
    MealLunch     = "LUNCH"
    MealDinner    = "DINNER"
    MealSnack     = "SNACK"
)

// One logged consumption event. Entries are never edited in place;
// a correction is delete + recreate.
type DietaryEntry struct {
    gorm.Model
    UserID     uint `gorm:"index;not null"`
    FoodItemID uint `gorm:"index;not null"`
    FoodItem   FoodItem

    PortionGrams float64   // canonical unit: grams
    MealType     string    `gorm:"size:16"` // BREAKFAST|LUNCH|DINNER|SNACK
    ConsumedAt   time.Time `gorm:"index;not null"`
}
