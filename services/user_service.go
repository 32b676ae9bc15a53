package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Brayern/bibo-health-hub/config"
	"github.com/Brayern/bibo-health-hub/models"
	"github.com/Brayern/bibo-health-hub/utils"
)

type ProfileInput struct {
	FullName      string  `json:"full_name"`
	Gender        string  `json:"gender"`
	DateOfBirth   string  `json:"date_of_birth"` // YYYY-MM-DD
	HeightCm      float64 `json:"height_cm"`
	WeightKg      float64 `json:"weight_kg"`
	ActivityLevel string  `json:"activity_level"`
	Avatar        string  `json:"avatar"` // base64 data URL
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	age := 0
	if !user.DateOfBirth.IsZero() {
		age = utils.CalculateAge(user.DateOfBirth)
	}

	profile := map[string]interface{}{
		"id":                   user.ID,
		"email":                user.Email,
		"full_name":            user.FullName,
		"gender":               user.Gender,
		"date_of_birth":        user.DateOfBirth.Format("2006-01-02"),
		"age":                  age,
		"height_cm":            user.HeightCm,
		"weight_kg":            user.WeightKg,
		"activity_level":       user.ActivityLevel,
		"avatar_url":           user.AvatarURL,
		"mfa_enabled":          user.MFAEnabled,
		"has_reminders_access": user.HasRemindersAccess,
	}

	if bmi, err := utils.CalculateBMI(user.HeightCm, user.WeightKg); err == nil {
		profile["bmi"] = bmi
		profile["bmi_category"] = utils.BMICategory(bmi)
	}

	return profile, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", input.DateOfBirth)
		if err == nil {
			user.DateOfBirth = dob
		}
	}
	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}
	if input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
	}
	if input.ActivityLevel != "" {
		user.ActivityLevel = input.ActivityLevel
	}
	if input.Avatar != "" {
		url, err := utils.UploadBase64ImageToS3(input.Avatar, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload avatar: %v", err)
		}
		user.AvatarURL = url
	}

	return config.DB.Save(&user).Error
}
