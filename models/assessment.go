package models

import (
	"time"

	"gorm.io/datatypes"
)

// HealthRiskAssessment is one submitted health snapshot plus the derived
// risk result. Rows are insert-only: never updated, never deleted.
type HealthRiskAssessment struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Age                int     `gorm:"not null" json:"age"`
	BMI                float64 `gorm:"column:bmi;not null" json:"bmi"`
	SystolicBp         int     `gorm:"not null" json:"systolic_bp"`
	DiastolicBp        int     `gorm:"not null" json:"diastolic_bp"`
	GlucoseLevel       float64 `gorm:"not null" json:"glucose_level"`
	Smoking            bool    `json:"smoking"`
	AlcoholConsumption string  `gorm:"size:20" json:"alcohol_consumption"`
	PhysicalActivity   string  `gorm:"size:20" json:"physical_activity"`
	FamilyHistory      bool    `json:"family_history"`

	RiskScore  int            `json:"risk_score"`
	RiskLevel  string         `gorm:"size:10" json:"risk_level"`
	HealthTips datatypes.JSON `json:"health_tips"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
