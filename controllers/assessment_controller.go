package controllers

import (
	"errors"
	"net/http"

	"github.com/Brayern/bibo-health-hub/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// AssessHealthRisk runs the full assessment flow: validate → prompt →
// gateway call → extract → persist. Gateway outcomes map 1:1 to status
// codes so the client can tell "try later" from "service misconfigured".
func AssessHealthRisk(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input services.AssessmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewAssessmentService()
	record, err := svc.Assess(userID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limits exceeded, please try again later."})
		case errors.Is(err, services.ErrPaymentRequired):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Payment required, please add funds to your AI gateway workspace."})
		default:
			log.Errorf("assessment failed for user %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assessment": record,
		"message":    "Health risk assessment completed successfully",
	})
}

// GetRiskTrend feeds the trend chart: oldest first, bounded to 10 records.
func GetRiskTrend(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	records, err := services.RiskTrend(userID, 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assessments": records})
}
