// services/auth_service.go
package services

import (
	"errors"
	"strings"

	"github.com/Sahithi-Sritha/FSAD-Project/config"
	"github.com/Sahithi-Sritha/FSAD-Project/models"
	"github.com/Sahithi-Sritha/FSAD-Project/utils"

	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct{}

func NewAuthService() *AuthService { return &AuthService{} }

type RegisterRequest struct {
	Username string  `json:"username" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Age      int     `json:"age"`
	WeightKg float64 `json:"weightKg"`
	HeightCm float64 `json:"heightCm"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (s *AuthService) Register(req RegisterRequest) (*models.User, string, error) {
	if req.Age < 0 || req.WeightKg < 0 || req.HeightCm < 0 {
		return nil, "", errors.New("age, weight and height must not be negative")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	err := config.DB.Where("email = ? OR username = ?", email, req.Username).First(&existing).Error
	if err == nil {
		return nil, "", errors.New("username or email already taken")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Username: req.Username,
		Email:    email,
		Password: hash,
		Age:      req.Age,
		WeightKg: req.WeightKg,
		HeightCm: req.HeightCm,
		Role:     "USER",
	}
	if err := config.DB.Create(user).Error; err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

func (s *AuthService) ChangePassword(userID uint, req ChangePasswordRequest) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return err
	}
	if !utils.CheckPasswordHash(req.OldPassword, user.Password) {
		return errors.New("current password is incorrect")
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return config.DB.Model(&user).Update("password", hash).Error
}

// DeleteAccount removes the user and everything keyed to them.
func (s *AuthService) DeleteAccount(userID uint) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{
			&models.DietaryEntry{}, &models.NutritionGoal{}, &models.ChatMessage{},
		} {
			if err := tx.Where("user_id = ?", userID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}

func (s *AuthService) Login(req LoginRequest) (*models.User, string, error) {
	var user models.User
	err := config.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}
