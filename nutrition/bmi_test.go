package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(70, 175)
	assert.NoError(t, err)
	assert.InDelta(t, 22.86, bmi, 0.01)

	_, err = CalculateBMI(0, 175)
	assert.Error(t, err)
	_, err = CalculateBMI(70, -160)
	assert.Error(t, err)
}

func TestClassifyBMIBoundaries(t *testing.T) {
	assert.Equal(t, BMIUnderweight, ClassifyBMI(18.499))
	assert.Equal(t, BMINormal, ClassifyBMI(18.5)) // inclusive lower bound
	assert.Equal(t, BMINormal, ClassifyBMI(24.999))
	assert.Equal(t, BMIOverweight, ClassifyBMI(25.0))
	assert.Equal(t, BMIOverweight, ClassifyBMI(29.999))
	assert.Equal(t, BMIObese, ClassifyBMI(30.0))
}

func TestDeriveGoalsFromBiometrics(t *testing.T) {
	// BMI ≈ 17.3 → underweight: raise calories & protein
	goals, err := DeriveGoalsFromBiometrics(BiometricProfile{WeightKg: 50, HeightCm: 170})
	assert.NoError(t, err)
	assert.Equal(t, 2400.0, goals.CalorieGoal)
	assert.Equal(t, 90.0, goals.ProteinGoal)

	// BMI ≈ 22.9 → normal maintenance
	goals, err = DeriveGoalsFromBiometrics(BiometricProfile{WeightKg: 70, HeightCm: 175})
	assert.NoError(t, err)
	assert.Equal(t, 2000.0, goals.CalorieGoal)

	// BMI ≈ 27.7 → deficit with higher protein and fiber
	goals, err = DeriveGoalsFromBiometrics(BiometricProfile{WeightKg: 85, HeightCm: 175})
	assert.NoError(t, err)
	assert.Equal(t, 1700.0, goals.CalorieGoal)
	assert.Equal(t, 32.0, goals.FiberGoal)

	// BMI ≈ 32.7 → larger deficit, lower carbs
	goals, err = DeriveGoalsFromBiometrics(BiometricProfile{WeightKg: 100, HeightCm: 175})
	assert.NoError(t, err)
	assert.Equal(t, 1500.0, goals.CalorieGoal)
	assert.Equal(t, 160.0, goals.CarbsGoal)
}

func TestDeriveGoalsWithoutBiometrics(t *testing.T) {
	goals, err := DeriveGoalsFromBiometrics(BiometricProfile{})
	assert.NoError(t, err)
	assert.Equal(t, DefaultGoals(), goals)

	// one measurement alone cannot give a BMI; fall back to defaults
	goals, err = DeriveGoalsFromBiometrics(BiometricProfile{WeightKg: 70})
	assert.NoError(t, err)
	assert.Equal(t, DefaultGoals(), goals)

	_, err = DeriveGoalsFromBiometrics(BiometricProfile{WeightKg: -70, HeightCm: 175})
	assert.Error(t, err)
}
