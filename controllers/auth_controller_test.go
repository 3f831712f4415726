package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"username": "ana",
		"email":    "ana@example.com",
		"password": "segredo1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "user created successfully", env.Message)

	var data struct {
		User map[string]json.RawMessage `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Contains(t, data.User, "username")
	assert.NotContains(t, data.User, "password", "password hash must never be serialized")

	// second registration with the same username is rejected
	w, env = doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"username": "ana",
		"email":    "outra@example.com",
		"password": "segredo1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "username already exists", env.Message)
}

func TestRegisterEndpointValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	// username too short, bad email, short password
	w, _ := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"username": "ab",
		"email":    "not-an-email",
		"password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// admin cannot be self-assigned
	w, _ = doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"username": "mallory",
		"email":    "mallory@example.com",
		"password": "segredo1",
		"userType": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"username": "ana",
		"email":    "ana@example.com",
		"password": "segredo1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// wrong password
	w, env := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"username": "ana",
		"password": "errada",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid credentials", env.Message)

	// login by email works
	w, env = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"username": "ana@example.com",
		"password": "segredo1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.Token)
	assert.Equal(t, "ana", data.User.Username)
}

func TestMeEndpointRequiresToken(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "ana")

	w, env := doJSON(t, r, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		User struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "ana", data.User.Username)

	w, _ = doJSON(t, r, http.MethodGet, "/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/auth/me", "garbage.token.here", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "ana")

	w, env := doJSON(t, r, http.MethodPost, "/auth/refresh", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.Token)
}
