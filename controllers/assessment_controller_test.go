package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Brayern/bibo-health-hub/config"
	"github.com/Brayern/bibo-health-hub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validAssessmentBody = `{
	"age": 45,
	"bmi": 28.5,
	"systolicBp": 135,
	"diastolicBp": 85,
	"glucoseLevel": 110,
	"smoking": false,
	"alcoholConsumption": "moderate",
	"physicalActivity": "moderate",
	"familyHistory": true
}`

func fakeGateway(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":"upstream error"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		})
	}))
	t.Setenv("AI_GATEWAY_URL", srv.URL)
	t.Setenv("AI_GATEWAY_KEY", "test-key")
	return srv
}

func postAssessment(r http.Handler, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/assess-health-risk", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func assessmentCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, config.DB.Model(&models.HealthRiskAssessment{}).Count(&count).Error)
	return count
}

func TestAssessHealthRiskEndToEnd(t *testing.T) {
	r := setupRouter(t)
	user, token := createTestUser(t, "scenario-a@example.com")
	srv := fakeGateway(t, http.StatusOK,
		"```json\n{\"riskScore\": 55, \"riskLevel\": \"medium\", \"healthTips\": [\"walk more\", \"less salt\", \"sleep 8h\", \"annual checkup\"]}\n```")
	defer srv.Close()

	w := postAssessment(r, token, validAssessmentBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Assessment models.HealthRiskAssessment `json:"assessment"`
		Message    string                      `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Health risk assessment completed successfully", resp.Message)
	assert.NotZero(t, resp.Assessment.ID)
	assert.Equal(t, user.ID, resp.Assessment.UserID)
	assert.Equal(t, 45, resp.Assessment.Age)
	assert.Equal(t, 28.5, resp.Assessment.BMI)
	assert.Equal(t, 135, resp.Assessment.SystolicBp)
	assert.Equal(t, 85, resp.Assessment.DiastolicBp)
	assert.Equal(t, 110.0, resp.Assessment.GlucoseLevel)
	assert.Contains(t, []string{"low", "medium", "high"}, resp.Assessment.RiskLevel)
	assert.GreaterOrEqual(t, resp.Assessment.RiskScore, 0)
	assert.LessOrEqual(t, resp.Assessment.RiskScore, 100)
	assert.False(t, resp.Assessment.CreatedAt.IsZero())

	var tips []string
	require.NoError(t, json.Unmarshal(resp.Assessment.HealthTips, &tips))
	assert.GreaterOrEqual(t, len(tips), 3)
	assert.LessOrEqual(t, len(tips), 5)
	for _, tip := range tips {
		assert.NotEmpty(t, tip)
	}

	assert.EqualValues(t, 1, assessmentCount(t))
}

func TestAssessHealthRiskMissingAuth(t *testing.T) {
	r := setupRouter(t)
	srv := fakeGateway(t, http.StatusOK, `{"riskScore":1,"riskLevel":"low","healthTips":["a","b","c"]}`)
	defer srv.Close()

	w := postAssessment(r, "", validAssessmentBody)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Authorization required"}`, w.Body.String())
	assert.EqualValues(t, 0, assessmentCount(t))
}

func TestAssessHealthRiskInvalidToken(t *testing.T) {
	r := setupRouter(t)

	w := postAssessment(r, "not-a-jwt", validAssessmentBody)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Unauthorized"}`, w.Body.String())
	assert.EqualValues(t, 0, assessmentCount(t))
}

func TestAssessHealthRiskRejectsOutOfRangeInput(t *testing.T) {
	r := setupRouter(t)
	_, token := createTestUser(t, "ranges@example.com")

	gatewayHit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gatewayHit = true
	}))
	defer srv.Close()
	t.Setenv("AI_GATEWAY_URL", srv.URL)
	t.Setenv("AI_GATEWAY_KEY", "test-key")

	body := strings.Replace(validAssessmentBody, `"age": 45`, `"age": 200`, 1)
	w := postAssessment(r, token, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, gatewayHit, "out-of-range input must not reach the gateway")
	assert.EqualValues(t, 0, assessmentCount(t))
}

func TestAssessHealthRiskUpstreamStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		upstream   int
		wantCode   int
		wantError  string
	}{
		{"rate limited", http.StatusTooManyRequests, http.StatusTooManyRequests, "Rate limits exceeded, please try again later."},
		{"payment required", http.StatusPaymentRequired, http.StatusPaymentRequired, "Payment required, please add funds to your AI gateway workspace."},
		{"other upstream failure", http.StatusBadGateway, http.StatusInternalServerError, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouter(t)
			_, token := createTestUser(t, "upstream@example.com")
			srv := fakeGateway(t, tc.upstream, "")
			defer srv.Close()

			w := postAssessment(r, token, validAssessmentBody)
			assert.Equal(t, tc.wantCode, w.Code)
			if tc.wantError != "" {
				assert.JSONEq(t, `{"error": "`+tc.wantError+`"}`, w.Body.String())
			}
			assert.EqualValues(t, 0, assessmentCount(t))
		})
	}
}

func TestAssessHealthRiskUnparseableReply(t *testing.T) {
	r := setupRouter(t)
	_, token := createTestUser(t, "parse@example.com")
	srv := fakeGateway(t, http.StatusOK, "I am unable to answer in JSON today.")
	defer srv.Close()

	w := postAssessment(r, token, validAssessmentBody)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.EqualValues(t, 0, assessmentCount(t), "no partial record on parse failure")
}

func TestRiskTrendScopedAndAscending(t *testing.T) {
	r := setupRouter(t)
	user, token := createTestUser(t, "trend@example.com")
	other, _ := createTestUser(t, "other@example.com")

	for i := 0; i < 4; i++ {
		require.NoError(t, config.DB.Create(&models.HealthRiskAssessment{
			UserID: user.ID, RiskScore: 20 + i, RiskLevel: "low",
		}).Error)
	}
	require.NoError(t, config.DB.Create(&models.HealthRiskAssessment{
		UserID: other.ID, RiskScore: 99, RiskLevel: "high",
	}).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/assessments/trend", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Assessments []models.HealthRiskAssessment `json:"assessments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Assessments, 4)
	for i, rec := range resp.Assessments {
		assert.Equal(t, user.ID, rec.UserID)
		if i > 0 {
			assert.True(t, !rec.CreatedAt.Before(resp.Assessments[i-1].CreatedAt))
		}
	}
}

func TestPreflightOptionsCarriesCORSHeaders(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/assess-health-risk", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}
