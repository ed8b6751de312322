package admin_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding-marketplace-api/db"
	"wedding-marketplace-api/models"
	"wedding-marketplace-api/routes"
	"wedding-marketplace-api/utils"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	_, err := db.OpenTest()
	require.NoError(t, err)
	app := fiber.New()
	routes.SetupAdminRoutes(app)
	return app
}

func createUser(t *testing.T, name, email string, role models.Role, verified bool) models.User {
	t.Helper()
	u := models.NewUser(name, email, "9000000000", "hash", role)
	u.Verified = verified
	require.NoError(t, db.DB.Create(&u).Error)
	return u
}

func doJSON(t *testing.T, app *fiber.App, method, path string, user *models.User, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		token, err := utils.GenerateToken(user)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func acceptPath(vendorID uint) string {
	return fmt.Sprintf("/admin/vendor-requests/%d/accept", vendorID)
}

func TestAcceptVendorRequest(t *testing.T) {
	app := setupApp(t)
	adminUser := createUser(t, "Admin", "a@example.com", models.RoleAdmin, true)
	vendorUser := createUser(t, "Vendor", "v@example.com", models.RoleVendor, false)

	resp := doJSON(t, app, "PATCH", acceptPath(vendorUser.ID), &adminUser, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decodeBody(t, resp)["vendor"].(map[string]interface{})
	assert.Equal(t, true, got["verified"])

	var reloaded models.User
	require.NoError(t, db.DB.First(&reloaded, vendorUser.ID).Error)
	assert.True(t, reloaded.Verified)

	// The flip is one-way: accepting again reports not found.
	resp = doJSON(t, app, "PATCH", acceptPath(vendorUser.ID), &adminUser, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAcceptVendorRequestRejectsNonVendors(t *testing.T) {
	app := setupApp(t)
	adminUser := createUser(t, "Admin", "a@example.com", models.RoleAdmin, true)
	clientUser := createUser(t, "Client", "c@example.com", models.RoleClient, true)

	resp := doJSON(t, app, "PATCH", acceptPath(clientUser.ID), &adminUser, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "PATCH", acceptPath(99999), &adminUser, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	app := setupApp(t)
	clientUser := createUser(t, "Client", "c@example.com", models.RoleClient, true)

	resp := doJSON(t, app, "GET", "/admin/users", &clientUser, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/admin/users", nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGetVendorRequestsListsUnverifiedOnly(t *testing.T) {
	app := setupApp(t)
	adminUser := createUser(t, "Admin", "a@example.com", models.RoleAdmin, true)
	createUser(t, "Pending Vendor", "pv@example.com", models.RoleVendor, false)
	createUser(t, "Verified Vendor", "vv@example.com", models.RoleVendor, true)
	createUser(t, "Client", "c@example.com", models.RoleClient, true)

	resp := doJSON(t, app, "GET", "/admin/vendor-requests", &adminUser, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	requests := decodeBody(t, resp)["vendor_requests"].([]interface{})
	require.Len(t, requests, 1)
	assert.Equal(t, "Pending Vendor", requests[0].(map[string]interface{})["full_name"])
}

func TestGetAllUsersFiltersAndPagination(t *testing.T) {
	app := setupApp(t)
	adminUser := createUser(t, "Admin", "a@example.com", models.RoleAdmin, true)
	for i := 0; i < 3; i++ {
		createUser(t, fmt.Sprintf("Client %d", i), fmt.Sprintf("c%d@example.com", i), models.RoleClient, true)
	}
	createUser(t, "Vendor", "v@example.com", models.RoleVendor, false)

	resp := doJSON(t, app, "GET", "/admin/users?role=client", &adminUser, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Len(t, body["users"].([]interface{}), 3)

	resp = doJSON(t, app, "GET", "/admin/users?role=vendor&verified=false", &adminUser, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody(t, resp)["users"].([]interface{}), 1)

	resp = doJSON(t, app, "GET", "/admin/users?page=1&limit=2", &adminUser, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Len(t, body["users"].([]interface{}), 2)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(5), pagination["total_users"])
	assert.Equal(t, float64(3), pagination["total_pages"])
}

func TestGetAllBookingsOversight(t *testing.T) {
	app := setupApp(t)
	adminUser := createUser(t, "Admin", "a@example.com", models.RoleAdmin, true)
	clientUser := createUser(t, "Client", "c@example.com", models.RoleClient, true)
	vendorUser := createUser(t, "Vendor", "v@example.com", models.RoleVendor, true)

	service := models.Service{
		Title: "Venue", Description: "d", Price: 1000,
		Category: "venue", Location: "Pune", VendorID: vendorUser.ID,
	}
	require.NoError(t, db.DB.Create(&service).Error)

	statuses := []models.BookingStatus{
		models.StatusPending, models.StatusCompleted, models.StatusCompleted, models.StatusCancelled,
	}
	for _, s := range statuses {
		b := models.Booking{
			ClientID: clientUser.ID, VendorID: vendorUser.ID, ServiceID: service.ID,
			BookingDate: time.Now().AddDate(0, 0, 2), Status: s, TotalAmount: 500,
		}
		require.NoError(t, db.DB.Create(&b).Error)
	}

	resp := doJSON(t, app, "GET", "/admin/bookings", &adminUser, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	assert.Len(t, body["bookings"].([]interface{}), 4)
	assert.Equal(t, float64(1000), body["total_revenue"], "revenue sums completed bookings only")

	counts := body["status_count"].(map[string]interface{})
	assert.Equal(t, float64(2), counts["completed"])
	assert.Equal(t, float64(1), counts["pending"])
	assert.Equal(t, float64(1), counts["cancelled"])
	assert.Equal(t, float64(4), counts["total"])

	resp = doJSON(t, app, "GET", "/admin/bookings?status=completed", &adminUser, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody(t, resp)["bookings"].([]interface{}), 2)
}
