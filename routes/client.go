package routes

import (
	"github.com/gofiber/fiber/v2"

	"wedding-marketplace-api/controllers/client"
	"wedding-marketplace-api/middleware"
	"wedding-marketplace-api/models"
)

// SetupClientRoutes configures the public catalog and the client
// booking routes
func SetupClientRoutes(app *fiber.App) {
	// Catalog is public; the verification gate hides unverified vendors
	app.Get("/services", client.GetAllServices)
	app.Get("/services/:id", client.GetServiceDetails)

	clientGroup := app.Group("/client", middleware.Protected(), middleware.RequireRole(models.RoleClient))
	clientGroup.Get("/bookings", client.GetClientBookings)
	clientGroup.Post("/book-service", client.BookService)
	clientGroup.Patch("/bookings/:bookingId/cancel", client.CancelBooking)
}
