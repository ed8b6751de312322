package middleware

import (
	"github.com/gofiber/fiber/v2"

	"wedding-marketplace-api/models"
)

// RequireRole rejects requests whose resolved identity does not hold
// the given role. Must run after Protected.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := CurrentUser(c)
		if err != nil {
			return unauthenticated(c, "User not found")
		}
		if user.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Access denied. " + string(role) + " role required.",
			})
		}
		return c.Next()
	}
}

// RequireVerified rejects unverified vendors. Clients and admins pass
// unconditionally.
func RequireVerified() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := CurrentUser(c)
		if err != nil {
			return unauthenticated(c, "User not found")
		}
		if !user.IsVerified() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Access denied. Vendor account must be verified by admin.",
			})
		}
		return c.Next()
	}
}

// UpdatePasswordGuard runs only on password-change requests, before the
// handler: it rejects unverified vendors and structurally incomplete
// bodies.
func UpdatePasswordGuard() fiber.Handler {
	type passwordBody struct {
		Password    string `json:"password"`
		OldPassword string `json:"old_password"`
	}
	return func(c *fiber.Ctx) error {
		user, err := CurrentUser(c)
		if err != nil {
			return unauthenticated(c, "User not found")
		}
		if !user.IsVerified() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Access denied. Vendor account must be verified by admin before updating password.",
			})
		}

		var body passwordBody
		if err := c.BodyParser(&body); err != nil || body.Password == "" || body.OldPassword == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "All fields are required",
			})
		}
		return c.Next()
	}
}
