package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"hospital-records-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAuth(t *testing.T, raw json.RawMessage) service.AuthResponse {
	t.Helper()
	var resp service.AuthResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	return resp
}

func TestRegisterLoginMe_Flow(t *testing.T) {
	r, _, _ := setupRouter(false)

	w, resp := performRequest(r, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	registered := decodeAuth(t, resp.Data)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "user", registered.User.Role)

	w, resp = performRequest(r, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"email":    "asha@example.com",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	loggedIn := decodeAuth(t, resp.Data)
	require.NotEmpty(t, loggedIn.Token)

	w, resp = performRequest(r, http.MethodGet, "/api/v1/auth/me", nil, loggedIn.Token)
	require.Equal(t, http.StatusOK, w.Code)

	var profile service.UserResponse
	require.NoError(t, json.Unmarshal(resp.Data, &profile))
	assert.Equal(t, "asha@example.com", profile.Email)
	assert.Equal(t, "Asha", profile.Name)

	w, _ = performRequest(r, http.MethodGet, "/api/v1/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegister_ValidationErrors(t *testing.T) {
	r, _, _ := setupRouter(false)

	w, resp := performRequest(r, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"email":    "not-an-email",
		"password": "short",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)

	fields := map[string]string{}
	for _, fe := range resp.Errors {
		fields[fe.Field] = fe.Message
	}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r, _, _ := setupRouter(false)

	body := map[string]interface{}{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "secret123",
	}
	w, _ := performRequest(r, http.MethodPost, "/api/v1/auth/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := performRequest(r, http.MethodPost, "/api/v1/auth/register", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "user already exists", resp.Error)
}

func TestLogin_WrongPassword(t *testing.T) {
	r, _, _ := setupRouter(false)

	w, _ := performRequest(r, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := performRequest(r, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"email":    "asha@example.com",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, resp.Success)
}
