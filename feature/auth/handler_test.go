package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"ink-and-realm/core/database"
	"ink-and-realm/feature/auth"
	"ink-and-realm/feature/auth/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) *fiber.App {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Session{}))

	app := fiber.New()
	f := auth.NewFeature(db, zap.NewNop(), auth.Config{SessionDays: 14})
	require.NoError(t, f.Load(app))
	return app
}

func TestHandleRegisterAndLogin(t *testing.T) {
	app := setupApp(t)

	// Register
	payload, _ := json.Marshal(models.RegisterRequest{Username: "frank", Password: "secret123"})
	req := httptest.NewRequest("POST", "/auth/register", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var authResp models.AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&authResp))
	assert.Equal(t, "frank", authResp.Username)
	assert.NotEmpty(t, authResp.SessionToken)

	// Duplicate register conflicts
	req = httptest.NewRequest("POST", "/auth/register", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)

	// Login succeeds
	loginPayload, _ := json.Marshal(models.LoginRequest{Username: "frank", Password: "secret123"})
	req = httptest.NewRequest("POST", "/auth/login", bytes.NewReader(loginPayload))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// Bad credentials
	badPayload, _ := json.Marshal(models.LoginRequest{Username: "frank", Password: "nope12345"})
	req = httptest.NewRequest("POST", "/auth/login", bytes.NewReader(badPayload))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestHandleRegister_BadBody(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest("POST", "/auth/register", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
