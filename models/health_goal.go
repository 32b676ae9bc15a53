package models

import "time"

// HealthGoal holds a user's target for one tracked metric.
type HealthGoal struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"index;not null" json:"user_id"`
	GoalType    string     `gorm:"size:50;not null" json:"goal_type"`
	TargetValue float64    `gorm:"not null" json:"target_value"`
	TargetUnit  string     `gorm:"size:20;not null" json:"target_unit"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
}
