package models

import (
    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Username string `gorm:"uniqueIndex;not null"`
    Email    string `gorm:"uniqueIndex;not null"`
    Password string `gorm:"not null"` // bcrypt hash
    Age      int
    WeightKg float64
    HeightCm float64
    Role     string `gorm:"size:16;default:USER"`
}
