package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Brayern/bibo-health-hub/config"
	"github.com/Brayern/bibo-health-hub/models"

	log "github.com/sirupsen/logrus"
)

// RemindersPriceCents is the exact charge, in minor units, that unlocks the
// reminders feature ($5.00). Any other amount is rejected.
const RemindersPriceCents = 500

var (
	ErrPaymentNotConfigured = errors.New("payment service configuration error")
	ErrVerificationFailed   = errors.New("payment verification failed")
	ErrAmountMismatch       = errors.New("payment amount mismatch")
)

// PaymentService consumes the processor's transaction-verification lookup.
type PaymentService struct {
	client    *http.Client
	baseURL   string
	secretKey string
}

func NewPaymentService() *PaymentService {
	base := os.Getenv("PAYSTACK_URL")
	if base == "" {
		base = "https://api.paystack.co"
	}
	return &PaymentService{
		client:    &http.Client{Timeout: 15 * time.Second},
		baseURL:   strings.TrimRight(base, "/"),
		secretKey: os.Getenv("PAYSTACK_SECRET_KEY"),
	}
}

// VerifyTransaction looks up reference with the processor and accepts only a
// "success" transaction of exactly RemindersPriceCents.
func (s *PaymentService) VerifyTransaction(reference string) error {
	if s.secretKey == "" {
		log.Error("paystack secret key not set")
		return ErrPaymentNotConfigured
	}

	req, err := http.NewRequest(http.MethodGet, s.baseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return fmt.Errorf("verify request error: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("verify request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read verify response error: %w", err)
	}

	var out struct {
		Status bool `json:"status"`
		Data   struct {
			Status string `json:"status"`
			Amount int    `json:"amount"`
		} `json:"data"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return fmt.Errorf("decode verify response error: %w", err)
	}

	if !out.Status || out.Data.Status != "success" {
		log.WithFields(log.Fields{"reference": reference, "status": out.Data.Status}).
			Warn("payment verification failed")
		return ErrVerificationFailed
	}
	if out.Data.Amount != RemindersPriceCents {
		log.WithFields(log.Fields{"reference": reference, "amount": out.Data.Amount}).
			Warn("payment amount mismatch")
		return ErrAmountMismatch
	}
	return nil
}

// GrantRemindersAccess flips the caller's access flag. Terminal: nothing
// ever sets it back.
func GrantRemindersAccess(userID uint) error {
	return config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("has_reminders_access", true).Error
}

// HasRemindersAccess reads the flag gating the reminders feature.
func HasRemindersAccess(userID uint) (bool, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return false, err
	}
	return user.HasRemindersAccess, nil
}
