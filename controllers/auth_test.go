package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding-marketplace-api/db"
	"wedding-marketplace-api/models"
	"wedding-marketplace-api/routes"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	_, err := db.OpenTest()
	require.NoError(t, err)
	app := fiber.New()
	routes.SetupAuthRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func registerUser(t *testing.T, app *fiber.App, email, role string) string {
	t.Helper()
	resp, body := doJSON(t, app, "POST", "/auth/register", "", fiber.Map{
		"full_name": "Test User",
		"email":     email,
		"phone":     "9876543210",
		"password":  "secret123",
		"role":      role,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return body["token"].(string)
}

func TestRegisterAndLogin(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, "POST", "/auth/register", "", fiber.Map{
		"full_name": "Asha",
		"email":     "Asha@Example.com",
		"phone":     "9876543210",
		"password":  "secret123",
		"role":      "client",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "asha@example.com", user["email"], "email is stored lowercase")
	assert.Equal(t, true, user["verified"], "clients are verified at creation")
	assert.NotContains(t, user, "password")

	// Duplicate email, case-insensitively.
	resp, _ = doJSON(t, app, "POST", "/auth/register", "", fiber.Map{
		"full_name": "Asha Again",
		"email":     "asha@example.com",
		"phone":     "9876543210",
		"password":  "secret123",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, body = doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "ASHA@example.com",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["token"])
	assert.NotEmpty(t, body["refreshToken"])

	resp, _ = doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "asha@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterVendorStartsUnverified(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, "POST", "/auth/register", "", fiber.Map{
		"full_name": "Ravi",
		"email":     "ravi@example.com",
		"phone":     "9876543210",
		"password":  "secret123",
		"role":      "vendor",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, false, body["user"].(map[string]interface{})["verified"])
}

func TestRegisterValidation(t *testing.T) {
	app := setupApp(t)

	cases := []struct {
		name string
		body fiber.Map
	}{
		{"missing email", fiber.Map{"full_name": "A", "phone": "9876543210", "password": "secret123"}},
		{"bad email", fiber.Map{"full_name": "A", "email": "not-an-email", "phone": "9876543210", "password": "secret123"}},
		{"short password", fiber.Map{"full_name": "A", "email": "a@example.com", "phone": "9876543210", "password": "abc"}},
		{"unknown role", fiber.Map{"full_name": "A", "email": "a@example.com", "phone": "9876543210", "password": "secret123", "role": "superuser"}},
	}
	for _, tc := range cases {
		resp, _ := doJSON(t, app, "POST", "/auth/register", "", tc.body)
		assert.Equalf(t, fiber.StatusBadRequest, resp.StatusCode, "case %q", tc.name)
	}
}

func TestGetMeAndUpdateProfile(t *testing.T) {
	app := setupApp(t)
	token := registerUser(t, app, "asha@example.com", "client")

	resp, body := doJSON(t, app, "GET", "/auth/me", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "asha@example.com", body["user"].(map[string]interface{})["email"])

	resp, _ = doJSON(t, app, "GET", "/auth/me", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, "PUT", "/auth/profile", token, fiber.Map{
		"full_name": "Asha Sharma",
		"phone":     "9123456780",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stored models.User
	require.NoError(t, db.DB.Where("email = ?", "asha@example.com").First(&stored).Error)
	assert.Equal(t, "Asha Sharma", stored.FullName)
	assert.Equal(t, "9123456780", stored.Phone)
}

func TestUpdatePassword(t *testing.T) {
	app := setupApp(t)
	token := registerUser(t, app, "asha@example.com", "client")

	resp, _ := doJSON(t, app, "PUT", "/auth/password", token, fiber.Map{
		"old_password": "wrong",
		"password":     "newsecret1",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, "PUT", "/auth/password", token, fiber.Map{
		"old_password": "secret123",
		"password":     "secret123",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "new password must differ")

	resp, _ = doJSON(t, app, "PUT", "/auth/password", token, fiber.Map{
		"old_password": "secret123",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "both fields required")

	resp, _ = doJSON(t, app, "PUT", "/auth/password", token, fiber.Map{
		"old_password": "secret123",
		"password":     "newsecret1",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Old password no longer works, new one does.
	resp, _ = doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email": "asha@example.com", "password": "secret123",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	resp, _ = doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email": "asha@example.com", "password": "newsecret1",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUpdatePasswordBlockedForUnverifiedVendor(t *testing.T) {
	app := setupApp(t)
	token := registerUser(t, app, "ravi@example.com", "vendor")

	resp, _ := doJSON(t, app, "PUT", "/auth/password", token, fiber.Map{
		"old_password": "secret123",
		"password":     "newsecret1",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestLogout(t *testing.T) {
	app := setupApp(t)
	token := registerUser(t, app, "asha@example.com", "client")

	// Without redis the blacklist is a no-op, but logout still succeeds.
	resp, _ := doJSON(t, app, "POST", "/auth/logout", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRefreshToken(t *testing.T) {
	app := setupApp(t)
	registerUser(t, app, "asha@example.com", "client")

	resp, body := doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email": "asha@example.com", "password": "secret123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	refresh := body["refreshToken"].(string)

	resp, body = doJSON(t, app, "POST", "/auth/refresh", "", fiber.Map{
		"refreshToken": refresh,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["token"])

	resp, _ = doJSON(t, app, "POST", "/auth/refresh", "", fiber.Map{
		"refreshToken": "not-a-token",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
