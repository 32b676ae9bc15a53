package controllers

import (
	"net/http"
	"strconv"

	"github.com/Brayern/bibo-health-hub/models"
	"github.com/Brayern/bibo-health-hub/services"

	"github.com/gin-gonic/gin"
)

// requireRemindersAccess gates every reminders route on the paid flag.
func requireRemindersAccess(c *gin.Context) (uint, bool) {
	userID := c.MustGet("userID").(uint)

	unlocked, err := services.HasRemindersAccess(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return 0, false
	}
	if !unlocked {
		c.JSON(http.StatusForbidden, gin.H{"error": "Payment required to access reminders"})
		return 0, false
	}
	return userID, true
}

func ListReminders(c *gin.Context) {
	userID, ok := requireRemindersAccess(c)
	if !ok {
		return
	}

	reminders, err := services.ListActiveReminders(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminders": reminders})
}

type reminderInput struct {
	Title             string `json:"title" binding:"required"`
	Description       string `json:"description"`
	ReminderType      string `json:"reminder_type"`
	ScheduledTime     string `json:"scheduled_time" binding:"required"`
	ReminderDate      string `json:"reminder_date"`
	IsRecurring       bool   `json:"is_recurring"`
	RecurrencePattern string `json:"recurrence_pattern"`
}

func CreateReminder(c *gin.Context) {
	userID, ok := requireRemindersAccess(c)
	if !ok {
		return
	}

	var input reminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminder := models.Reminder{
		UserID:            userID,
		Title:             input.Title,
		Description:       input.Description,
		ReminderType:      input.ReminderType,
		ScheduledTime:     input.ScheduledTime,
		ReminderDate:      input.ReminderDate,
		IsRecurring:       input.IsRecurring,
		RecurrencePattern: input.RecurrencePattern,
	}
	if err := services.CreateReminder(&reminder); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reminder": reminder})
}

func DeactivateReminder(c *gin.Context) {
	userID, ok := requireRemindersAccess(c)
	if !ok {
		return
	}

	reminderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reminder id"})
		return
	}

	if err := services.DeactivateReminder(userID, uint(reminderID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
