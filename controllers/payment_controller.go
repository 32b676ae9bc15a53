package controllers

import (
	"errors"
	"net/http"

	"github.com/Brayern/bibo-health-hub/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type paymentInput struct {
	Email     string `json:"email"`
	Reference string `json:"reference"`
}

// ProcessPayment verifies a completed transaction with the processor and,
// only on an exact-amount success, flips the caller's reminders access flag.
// Every failure path leaves the flag untouched.
func ProcessPayment(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input paymentInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Reference == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and reference are required"})
		return
	}

	svc := services.NewPaymentService()
	if err := svc.VerifyTransaction(input.Reference); err != nil {
		switch {
		case errors.Is(err, services.ErrPaymentNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment service configuration error"})
		case errors.Is(err, services.ErrAmountMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment amount mismatch"})
		case errors.Is(err, services.ErrVerificationFailed):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment verification failed"})
		default:
			log.Errorf("payment verification error for user %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if err := services.GrantRemindersAccess(userID); err != nil {
		log.Errorf("failed to grant reminders access to user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to grant access"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment verified and access granted",
	})
}
