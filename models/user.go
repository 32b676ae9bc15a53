package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	FullName      string
	Gender        string
	DateOfBirth   time.Time
	HeightCm      float64
	WeightKg      float64
	ActivityLevel string
	AvatarURL     string

	// Flipped exactly once by a verified payment; no downgrade path.
	HasRemindersAccess bool `gorm:"not null;default:false"`

	MFAEnabled    bool
	MFACode       string
	ResetToken    string
	ResetTokenExp time.Time
}
