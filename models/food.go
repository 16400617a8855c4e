package models

import "gorm.io/gorm"

// A catalog food with its per-serving nutrient profile.
type FoodItem struct {
    gorm.Model
    Name        string `gorm:"uniqueIndex;not null"`
    Description string
    Category    string `gorm:"size:32"` // FRUIT|VEGETABLE|PROTEIN|GRAIN|DAIRY|LEGUME|NUT_SEED|SNACK|OTHER
    IsCustom    bool   `gorm:"default:false"`
    IsActive    bool   `gorm:"default:true"`

    Profile NutrientProfile `gorm:"foreignKey:FoodItemID"`
}

// NutrientProfile holds nutrient content per ServingSizeGrams of the food.
// Macros are fixed columns; micronutrients are an open set of named rows.
type NutrientProfile struct {
    gorm.Model
    FoodItemID uint `gorm:"uniqueIndex;not null"`

    ServingSizeGrams float64 // 0 means "unknown"; aggregation falls back to 100
    Calories         float64 // kcal
    Protein          float64 // g
    Carbohydrates    float64 // g
    Fat              float64 // g
    Fiber            float64 // g

    Micronutrients []Micronutrient `gorm:"foreignKey:NutrientProfileID"`
}

type Micronutrient struct {
    gorm.Model
    NutrientProfileID uint   `gorm:"index;not null"`
    Name              string `gorm:"size:64;not null"` // e.g. "Vitamin C"
    Amount            float64
    Unit              string `gorm:"size:8"` // "mg" | "mcg"
}
