package services

import (
	"time"

	"github.com/Brayern/bibo-health-hub/config"
	"github.com/Brayern/bibo-health-hub/models"
)

func CreateMetric(userID uint, metricType string, value float64, unit, notes string, recordedAt time.Time) (*models.HealthMetric, error) {
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}
	metric := models.HealthMetric{
		UserID:     userID,
		MetricType: metricType,
		Value:      value,
		Unit:       unit,
		Notes:      notes,
		RecordedAt: recordedAt,
	}
	if err := config.DB.Create(&metric).Error; err != nil {
		return nil, err
	}
	return &metric, nil
}

// ListRecentMetrics mirrors the dashboard read: newest first, bounded.
func ListRecentMetrics(userID uint, limit int) ([]models.HealthMetric, error) {
	var metrics []models.HealthMetric
	err := config.DB.
		Where("user_id = ?", userID).
		Order("recorded_at desc").
		Limit(limit).
		Find(&metrics).Error
	return metrics, err
}
