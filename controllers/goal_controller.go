package controllers

import (
	"net/http"
	"time"

	"github.com/Brayern/bibo-health-hub/services"

	"github.com/gin-gonic/gin"
)

type goalInput struct {
	GoalType    string  `json:"goal_type" binding:"required"`
	TargetValue float64 `json:"target_value" binding:"required"`
	TargetUnit  string  `json:"target_unit" binding:"required"`
	StartDate   string  `json:"start_date"` // YYYY-MM-DD
	EndDate     string  `json:"end_date"`
}

func CreateGoal(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input goalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var startDate time.Time
	if input.StartDate != "" {
		t, err := time.Parse("2006-01-02", input.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date, use YYYY-MM-DD"})
			return
		}
		startDate = t
	}

	var endDate *time.Time
	if input.EndDate != "" {
		t, err := time.Parse("2006-01-02", input.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date, use YYYY-MM-DD"})
			return
		}
		endDate = &t
	}

	goal, err := services.CreateGoal(userID, input.GoalType, input.TargetValue, input.TargetUnit, startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

func ListGoals(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	goals, err := services.ListActiveGoals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}
