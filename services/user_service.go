// services/user_service.go
package services

import (
	"errors"
	"math"

	"github.com/Sahithi-Sritha/FSAD-Project/config"
	"github.com/Sahithi-Sritha/FSAD-Project/models"
	"github.com/Sahithi-Sritha/FSAD-Project/nutrition"
)

type UserService struct{}

func NewUserService() *UserService { return &UserService{} }

// Profile is the user as the API presents them. BMI and its category are
// derived on read and present only when biometrics are on file.
type Profile struct {
	ID          uint    `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Age         int     `json:"age"`
	WeightKg    float64 `json:"weightKg"`
	HeightCm    float64 `json:"heightCm"`
	BMI         float64 `json:"bmi,omitempty"`
	BMICategory string  `json:"bmiCategory,omitempty"`
}

func (s *UserService) GetProfile(userID uint) (*Profile, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return profileOf(&user), nil
}

type ProfileUpdateRequest struct {
	Age      int     `json:"age"`
	WeightKg float64 `json:"weightKg"`
	HeightCm float64 `json:"heightCm"`
}

func (s *UserService) UpdateProfile(userID uint, req ProfileUpdateRequest) (*Profile, error) {
	if req.Age < 0 || req.WeightKg < 0 || req.HeightCm < 0 {
		return nil, errors.New("age, weight and height must not be negative")
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	user.Age = req.Age
	user.WeightKg = req.WeightKg
	user.HeightCm = req.HeightCm
	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return profileOf(&user), nil
}

func profileOf(u *models.User) *Profile {
	p := &Profile{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Age:      u.Age,
		WeightKg: u.WeightKg,
		HeightCm: u.HeightCm,
	}
	if bmi, err := nutrition.CalculateBMI(u.WeightKg, u.HeightCm); err == nil {
		p.BMI = math.Round(bmi*10) / 10
		p.BMICategory = nutrition.ClassifyBMI(bmi)
	}
	return p
}
