package services

import (
	"time"

	"github.com/Brayern/bibo-health-hub/config"
	"github.com/Brayern/bibo-health-hub/models"
)

func CreateNutritionEntry(entry *models.NutritionEntry) error {
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}
	return config.DB.Create(entry).Error
}

func ListRecentNutritionEntries(userID uint, limit int) ([]models.NutritionEntry, error) {
	var entries []models.NutritionEntry
	err := config.DB.
		Where("user_id = ?", userID).
		Order("recorded_at desc").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
