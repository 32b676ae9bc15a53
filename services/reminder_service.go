package services

import (
	"errors"

	"github.com/Brayern/bibo-health-hub/config"
	"github.com/Brayern/bibo-health-hub/models"
)

// ListActiveReminders returns the caller's active reminders in display
// order. Recurrence filtering happens client-side; nothing here schedules.
func ListActiveReminders(userID uint) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := config.DB.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("scheduled_time asc").
		Find(&reminders).Error
	return reminders, err
}

func CreateReminder(reminder *models.Reminder) error {
	reminder.IsActive = true
	return config.DB.Create(reminder).Error
}

// DeactivateReminder soft-deletes: the row stays, is_active flips off.
// Scoped to the owner so one user cannot touch another's reminders.
func DeactivateReminder(userID, reminderID uint) error {
	result := config.DB.Model(&models.Reminder{}).
		Where("id = ? AND user_id = ?", reminderID, userID).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("reminder not found")
	}
	return nil
}
