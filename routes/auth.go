package routes

import (
	"github.com/gofiber/fiber/v2"

	"wedding-marketplace-api/controllers"
	"wedding-marketplace-api/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.RefreshToken)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.GetMe)
	auth.Put("/profile", middleware.Protected(), controllers.UpdateProfile)
	auth.Put("/password", middleware.Protected(), middleware.UpdatePasswordGuard(), controllers.UpdatePassword)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)
}
