package routes

import (
	"github.com/gofiber/fiber/v2"

	"wedding-marketplace-api/controllers/admin"
	"wedding-marketplace-api/middleware"
	"wedding-marketplace-api/models"
)

// SetupAdminRoutes configures all admin related routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))

	adminGroup.Get("/profile", admin.GetAdminProfile)
	adminGroup.Get("/vendor-requests", admin.GetVendorRequests)
	adminGroup.Patch("/vendor-requests/:vendorId/accept", admin.AcceptVendorRequest)
	adminGroup.Get("/users", admin.GetAllUsers)
	adminGroup.Get("/bookings", admin.GetAllBookings)
}
