package nutrition

import "errors"

// BMI band labels. Bands are inclusive of their lower bound.
const (
	BMIUnderweight = "Underweight"
	BMINormal      = "Normal"
	BMIOverweight  = "Overweight"
	BMIObese       = "Obese"
)

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(weightKg, heightCm float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}

	h := heightCm / 100.0 // to meters
	return weightKg / (h * h), nil
}

func ClassifyBMI(bmi float64) string {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25.0:
		return BMINormal
	case bmi < 30.0:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// DefaultGoals are the maintenance targets used when a user has neither
// explicit goals nor biometrics on file.
func DefaultGoals() GoalSet {
	return GoalSet{CalorieGoal: 2000, ProteinGoal: 50, CarbsGoal: 300, FatGoal: 65, FiberGoal: 25}
}

// DeriveGoalsFromBiometrics suggests a daily goal set from body
// measurements. Absent biometrics (zero values) fall back to maintenance
// defaults; negative values are a caller bug.
func DeriveGoalsFromBiometrics(b BiometricProfile) (GoalSet, error) {
	if b.WeightKg < 0 || b.HeightCm < 0 {
		return GoalSet{}, errors.New("weight and height must not be negative")
	}
	if b.WeightKg == 0 || b.HeightCm == 0 {
		return DefaultGoals(), nil
	}

	bmi, err := CalculateBMI(b.WeightKg, b.HeightCm)
	if err != nil {
		return GoalSet{}, err
	}

	switch ClassifyBMI(bmi) {
	case BMIUnderweight:
		// raise calories & protein to support healthy weight gain
		return GoalSet{CalorieGoal: 2400, ProteinGoal: 90, CarbsGoal: 320, FatGoal: 80, FiberGoal: 28}, nil
	case BMINormal:
		return GoalSet{CalorieGoal: 2000, ProteinGoal: 70, CarbsGoal: 260, FatGoal: 65, FiberGoal: 28}, nil
	case BMIOverweight:
		// slight calorie deficit with higher protein and fiber
		return GoalSet{CalorieGoal: 1700, ProteinGoal: 95, CarbsGoal: 190, FatGoal: 55, FiberGoal: 32}, nil
	default:
		// larger deficit, lower carbs, higher protein and fiber for satiety
		return GoalSet{CalorieGoal: 1500, ProteinGoal: 110, CarbsGoal: 160, FatGoal: 50, FiberGoal: 35}, nil
	}
}
