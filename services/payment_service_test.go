package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Brayern/bibo-health-hub/config"
	"github.com/Brayern/bibo-health-hub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paystackStub(t *testing.T, outerStatus bool, txStatus string, amount int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		fmt.Fprintf(w, `{"status": %t, "data": {"status": %q, "amount": %d}}`, outerStatus, txStatus, amount)
	}))
}

func newTestPaymentService(baseURL, secret string) *PaymentService {
	return &PaymentService{
		client:    &http.Client{Timeout: 5 * time.Second},
		baseURL:   baseURL,
		secretKey: secret,
	}
}

func TestVerifyTransaction(t *testing.T) {
	t.Run("success at exact amount", func(t *testing.T) {
		srv := paystackStub(t, true, "success", RemindersPriceCents)
		defer srv.Close()
		assert.NoError(t, newTestPaymentService(srv.URL, "sk_test").VerifyTransaction("ref-ok"))
	})

	t.Run("missing secret key", func(t *testing.T) {
		err := newTestPaymentService("http://unused", "").VerifyTransaction("ref")
		assert.ErrorIs(t, err, ErrPaymentNotConfigured)
	})

	t.Run("transaction status not success", func(t *testing.T) {
		srv := paystackStub(t, true, "failed", RemindersPriceCents)
		defer srv.Close()
		err := newTestPaymentService(srv.URL, "sk_test").VerifyTransaction("bad-ref")
		assert.ErrorIs(t, err, ErrVerificationFailed)
	})

	t.Run("processor rejects lookup", func(t *testing.T) {
		srv := paystackStub(t, false, "success", RemindersPriceCents)
		defer srv.Close()
		err := newTestPaymentService(srv.URL, "sk_test").VerifyTransaction("unknown-ref")
		assert.ErrorIs(t, err, ErrVerificationFailed)
	})

	t.Run("one cent short", func(t *testing.T) {
		srv := paystackStub(t, true, "success", 499)
		defer srv.Close()
		err := newTestPaymentService(srv.URL, "sk_test").VerifyTransaction("short-ref")
		assert.ErrorIs(t, err, ErrAmountMismatch)
	})

	t.Run("overpayment also rejected", func(t *testing.T) {
		srv := paystackStub(t, true, "success", 501)
		defer srv.Close()
		err := newTestPaymentService(srv.URL, "sk_test").VerifyTransaction("long-ref")
		assert.ErrorIs(t, err, ErrAmountMismatch)
	})
}

func TestGrantRemindersAccess(t *testing.T) {
	openTestDB(t)

	user := models.User{Email: "grant@example.com", Password: "x"}
	require.NoError(t, config.DB.Create(&user).Error)

	unlocked, err := HasRemindersAccess(user.ID)
	require.NoError(t, err)
	assert.False(t, unlocked)

	require.NoError(t, GrantRemindersAccess(user.ID))

	unlocked, err = HasRemindersAccess(user.ID)
	require.NoError(t, err)
	assert.True(t, unlocked)
}
