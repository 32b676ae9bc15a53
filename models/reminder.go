package models

import "time"

// Reminder is display-time data only; nothing schedules or fires these
// server-side. Recurrence is a stored pattern the client filters on.
type Reminder struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"index;not null" json:"user_id"`
	Title             string    `gorm:"not null" json:"title"`
	Description       string    `gorm:"type:text" json:"description,omitempty"`
	ReminderType      string    `gorm:"size:30" json:"reminder_type,omitempty"` // medication | exercise | appointment | ...
	ScheduledTime     string    `gorm:"size:10;not null" json:"scheduled_time"` // HH:MM
	ReminderDate      string    `gorm:"size:10" json:"reminder_date,omitempty"` // YYYY-MM-DD, empty for recurring
	IsRecurring       bool      `json:"is_recurring"`
	RecurrencePattern string    `gorm:"size:20" json:"recurrence_pattern,omitempty"` // daily | weekly | monthly
	IsActive          bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}
