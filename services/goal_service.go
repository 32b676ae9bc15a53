package services

import (
	"time"

	"github.com/Brayern/bibo-health-hub/config"
	"github.com/Brayern/bibo-health-hub/models"
)

func CreateGoal(userID uint, goalType string, targetValue float64, targetUnit string, startDate time.Time, endDate *time.Time) (*models.HealthGoal, error) {
	if startDate.IsZero() {
		startDate = time.Now()
	}
	goal := models.HealthGoal{
		UserID:      userID,
		GoalType:    goalType,
		TargetValue: targetValue,
		TargetUnit:  targetUnit,
		StartDate:   startDate,
		EndDate:     endDate,
		IsActive:    true,
	}
	if err := config.DB.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func ListActiveGoals(userID uint) ([]models.HealthGoal, error) {
	var goals []models.HealthGoal
	err := config.DB.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at desc").
		Find(&goals).Error
	return goals, err
}
