package controllers

import (
	"net/http"
	"time"

	"github.com/Brayern/bibo-health-hub/services"

	"github.com/gin-gonic/gin"
)

type metricInput struct {
	MetricType string  `json:"metric_type" binding:"required"`
	Value      float64 `json:"value" binding:"required"`
	Unit       string  `json:"unit" binding:"required"`
	Notes      string  `json:"notes"`
	RecordedAt string  `json:"recorded_at"` // optional, RFC 3339
}

func CreateMetric(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input metricInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var recordedAt time.Time
	if input.RecordedAt != "" {
		t, err := time.Parse(time.RFC3339, input.RecordedAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recorded_at, use RFC 3339"})
			return
		}
		recordedAt = t
	}

	metric, err := services.CreateMetric(userID, input.MetricType, input.Value, input.Unit, input.Notes, recordedAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"metric": metric})
}

func ListMetrics(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	metrics, err := services.ListRecentMetrics(userID, 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}
