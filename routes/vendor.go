package routes

import (
	"github.com/gofiber/fiber/v2"

	"wedding-marketplace-api/controllers/vendor"
	"wedding-marketplace-api/middleware"
	"wedding-marketplace-api/models"
)

// SetupVendorRoutes configures all vendor related routes. Every route
// requires the vendor role and an admin-verified account.
func SetupVendorRoutes(app *fiber.App) {
	vendorGroup := app.Group("/vendor",
		middleware.Protected(),
		middleware.RequireRole(models.RoleVendor),
		middleware.RequireVerified(),
	)

	vendorGroup.Get("/profile", vendor.GetVendorProfile)

	vendorGroup.Get("/bookings/requests", vendor.GetBookingRequests)
	vendorGroup.Get("/bookings", vendor.GetBookedServices)
	vendorGroup.Patch("/bookings/:bookingId/status", vendor.ChangeBookingStatus)

	vendorGroup.Post("/services", vendor.AddService)
	vendorGroup.Get("/services", vendor.GetMyServices)
	vendorGroup.Put("/services/:serviceId", vendor.UpdateService)
	vendorGroup.Delete("/services/:serviceId", vendor.DeleteService)
	vendorGroup.Post("/services/:serviceId/images", vendor.UploadServiceImage)
}
