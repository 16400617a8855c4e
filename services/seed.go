// services/seed.go
package services

import (
	"log"

	"github.com/Sahithi-Sritha/FSAD-Project/config"
	"github.com/Sahithi-Sritha/FSAD-Project/models"
)

// SeedFoods populates the catalog with system foods when none exist.
// Profiles are per 100g. Micronutrient argument order:
// vitamin A (mcg), C (mg), D (mcg), E (mg), K (mcg), B12 (mcg),
// calcium, iron, magnesium, zinc, potassium (all mg).
func SeedFoods() {
	var count int64
	if err := config.DB.
		Model(&models.FoodItem{}).
		Where("is_custom = ?", false).
		Count(&count).Error; err != nil {
		log.Printf("seed check failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	seedFood("Apple", "Fresh medium apple", "FRUIT",
		95, 0.5, 25, 0.3, 4.4,
		5, 8.4, 0, 0.3, 4, 0,
		11, 0.2, 9, 0.1, 195)

	seedFood("Banana", "Medium banana", "FRUIT",
		105, 1.3, 27, 0.4, 3.1,
		4, 10.3, 0, 0.1, 0.6, 0,
		6, 0.3, 32, 0.2, 422)

	seedFood("Chicken Breast", "Grilled skinless chicken breast", "PROTEIN",
		165, 31, 0, 3.6, 0,
		6, 0, 0.1, 0.3, 0, 0.3,
		11, 0.7, 29, 0.7, 256)

	seedFood("Brown Rice", "Cooked brown rice", "GRAIN",
		216, 5, 45, 1.8, 3.5,
		0, 0, 0, 0.1, 1.2, 0,
		20, 0.8, 86, 1.2, 154)

	seedFood("Broccoli", "Steamed broccoli", "VEGETABLE",
		55, 3.7, 11, 0.6, 5.1,
		120, 101, 0, 1.5, 220, 0,
		62, 1.0, 33, 0.7, 457)

	seedFood("Milk", "Whole milk", "DAIRY",
		149, 7.7, 11.7, 7.9, 0,
		68, 0, 3.2, 0.1, 0.5, 1.1,
		276, 0.1, 24, 0.9, 322)

	seedFood("Egg", "Large boiled egg", "PROTEIN",
		78, 6.3, 0.6, 5.3, 0,
		75, 0, 1.1, 0.5, 0.3, 0.6,
		25, 0.6, 5, 0.5, 63)

	seedFood("Salmon", "Grilled salmon fillet", "PROTEIN",
		206, 22, 0, 13, 0,
		12, 0, 14.4, 3.5, 0.5, 2.8,
		9, 0.3, 27, 0.4, 363)

	seedFood("Spinach", "Raw spinach", "VEGETABLE",
		7, 0.9, 1.1, 0.1, 0.7,
		141, 8.4, 0, 0.6, 145, 0,
		30, 0.8, 24, 0.2, 167)

	seedFood("Almonds", "Raw almonds", "NUT_SEED",
		164, 6, 6, 14, 3.5,
		0, 0, 0, 7.3, 0, 0,
		76, 1.0, 76, 0.9, 208)

	seedFood("Chapati", "Whole-wheat roti", "GRAIN",
		120, 3.5, 20, 3.5, 2.5,
		0, 0, 0, 0.3, 1.5, 0,
		10, 1.0, 25, 0.5, 50)

	seedFood("Dal Tadka", "Yellow toor dal with tempering", "LEGUME",
		180, 10, 24, 5, 5.0,
		15, 3, 0, 0.3, 2, 0,
		40, 2.8, 45, 1.2, 350)

	seedFood("Rajma", "Kidney-bean curry", "LEGUME",
		225, 13, 35, 4, 8.0,
		10, 3, 0, 0.3, 8, 0,
		60, 3.5, 55, 1.4, 450)

	seedFood("Chole", "Chickpea curry", "LEGUME",
		240, 12, 36, 6, 10.0,
		15, 5, 0, 0.5, 6, 0,
		70, 4.0, 60, 2.0, 400)

	seedFood("Curd / Dahi", "Plain homemade yogurt", "DAIRY",
		100, 7, 8, 4.5, 0,
		25, 1, 0.1, 0.1, 0.4, 0.5,
		180, 0.2, 18, 0.8, 260)
}

func seedFood(name, description, category string,
	calories, protein, carbs, fat, fiber float64,
	vitA, vitC, vitD, vitE, vitK, vitB12 float64,
	calcium, iron, magnesium, zinc, potassium float64,
) {
	micro := func(n string, amount float64, unit string) models.Micronutrient {
		return models.Micronutrient{Name: n, Amount: amount, Unit: unit}
	}

	food := &models.FoodItem{
		Name:        name,
		Description: description,
		Category:    category,
		IsCustom:    false,
		IsActive:    true,
		Profile: models.NutrientProfile{
			ServingSizeGrams: 100,
			Calories:         calories,
			Protein:          protein,
			Carbohydrates:    carbs,
			Fat:              fat,
			Fiber:            fiber,
			Micronutrients: []models.Micronutrient{
				micro("Vitamin A", vitA, "mcg"),
				micro("Vitamin C", vitC, "mg"),
				micro("Vitamin D", vitD, "mcg"),
				micro("Vitamin E", vitE, "mg"),
				micro("Vitamin K", vitK, "mcg"),
				micro("Vitamin B12", vitB12, "mcg"),
				micro("Calcium", calcium, "mg"),
				micro("Iron", iron, "mg"),
				micro("Magnesium", magnesium, "mg"),
				micro("Zinc", zinc, "mg"),
				micro("Potassium", potassium, "mg"),
			},
		},
	}

	if err := config.DB.Create(food).Error; err != nil {
		log.Printf("seed food %q failed: %v", name, err)
	}
}
