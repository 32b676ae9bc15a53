package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/auth/register", "",
		`{"email": "new@example.com", "password": "correct-horse-battery", "full_name": "New User"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(r, http.MethodPost, "/auth/login", "",
		`{"email": "new@example.com", "password": "correct-horse-battery"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	// the issued token works on a protected route
	w = doJSON(r, http.MethodGet, "/user/profile", resp.Token, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupRouter(t)
	createTestUser(t, "victim@example.com")

	w := doJSON(r, http.MethodPost, "/auth/login", "",
		`{"email": "victim@example.com", "password": "guess-attempt"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/auth/register", "",
		`{"email": "short@example.com", "password": "abc", "full_name": "Shorty"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
