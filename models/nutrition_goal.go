package models

import (
    "gorm.io/gorm"
)

// NutritionGoal holds each user’s daily nutrient-intake targets.
type NutritionGoal struct {
    gorm.Model
    UserID      uint    `gorm:"uniqueIndex;not null"`
    CalorieGoal float64 // e.g. 2000 kcal
    ProteinGoal float64 // e.g. 50 g
    CarbsGoal   float64 // e.g. 300 g
    FatGoal     float64 // e.g. 65 g
    FiberGoal   float64 // e.g. 25 g
}
