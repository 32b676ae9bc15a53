package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Brayern/bibo-health-hub/config"
	"github.com/Brayern/bibo-health-hub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemindersLockedWithoutPayment(t *testing.T) {
	r := setupRouter(t)
	_, token := createTestUser(t, "locked@example.com")

	req := httptest.NewRequest(http.MethodGet, "/api/reminders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error": "Payment required to access reminders"}`, w.Body.String())
}

func TestRemindersUnlockedFlow(t *testing.T) {
	r := setupRouter(t)
	user, token := createTestUser(t, "unlocked@example.com")
	require.NoError(t, config.DB.Model(user).Update("has_reminders_access", true).Error)

	// create two reminders out of display order
	for _, tm := range []string{"20:00", "08:30"} {
		body := fmt.Sprintf(`{"title": "take meds", "scheduled_time": %q, "is_recurring": true, "recurrence_pattern": "daily"}`, tm)
		req := httptest.NewRequest(http.MethodPost, "/api/reminders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/reminders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Reminders []models.Reminder `json:"reminders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Reminders, 2)
	assert.Equal(t, "08:30", resp.Reminders[0].ScheduledTime, "list must be ordered by scheduled time")
	assert.Equal(t, "20:00", resp.Reminders[1].ScheduledTime)

	// deactivate the first; it drops from the active list but the row stays
	del := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/reminders/%d", resp.Reminders[0].ID), nil)
	del.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, del)
	require.Equal(t, http.StatusNoContent, w.Code)

	var remaining []models.Reminder
	require.NoError(t, config.DB.Where("user_id = ? AND is_active = ?", user.ID, true).Find(&remaining).Error)
	assert.Len(t, remaining, 1)

	var total int64
	require.NoError(t, config.DB.Model(&models.Reminder{}).Where("user_id = ?", user.ID).Count(&total).Error)
	assert.EqualValues(t, 2, total, "deactivation is soft")
}

func TestDeactivateReminderScopedToOwner(t *testing.T) {
	r := setupRouter(t)
	owner, _ := createTestUser(t, "owner@example.com")
	intruder, intruderToken := createTestUser(t, "intruder@example.com")
	require.NoError(t, config.DB.Model(owner).Update("has_reminders_access", true).Error)
	require.NoError(t, config.DB.Model(intruder).Update("has_reminders_access", true).Error)

	reminder := models.Reminder{UserID: owner.ID, Title: "water", ScheduledTime: "09:00", IsActive: true}
	require.NoError(t, config.DB.Create(&reminder).Error)

	del := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/reminders/%d", reminder.ID), nil)
	del.Header.Set("Authorization", "Bearer "+intruderToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, del)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var reloaded models.Reminder
	require.NoError(t, config.DB.First(&reloaded, reminder.ID).Error)
	assert.True(t, reloaded.IsActive)
}
