package models

import "time"

// HealthMetric is one logged measurement (weight, heart rate, steps, ...).
type HealthMetric struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	MetricType string    `gorm:"size:50;not null" json:"metric_type"`
	Value      float64   `gorm:"not null" json:"value"`
	Unit       string    `gorm:"size:20;not null" json:"unit"`
	Notes      string    `gorm:"type:text" json:"notes,omitempty"`
	RecordedAt time.Time `gorm:"index" json:"recorded_at"`
}
