package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"wedding-marketplace-api/db"
	"wedding-marketplace-api/models"
	"wedding-marketplace-api/redis"
	"wedding-marketplace-api/utils"
)

// Protected validates the bearer token and resolves it to a live user
// record. The resolved identity snapshot is attached to the request
// context; every downstream role or verification check reads from it.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:     utils.JWTSecret(),
		ErrorHandler:   jwtError,
		SuccessHandler: resolveIdentity,
	})
}

func resolveIdentity(c *fiber.Ctx) error {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return unauthenticated(c, "Invalid token")
	}

	if redis.IsTokenBlacklisted(token.Raw) {
		return unauthenticated(c, "Token has been revoked")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return unauthenticated(c, "Invalid token claims")
	}

	userID, err := extractUserID(claims)
	if err != nil {
		return unauthenticated(c, "Invalid user ID in token")
	}

	// The subject must still exist; a deleted account invalidates
	// otherwise well-formed tokens.
	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return unauthenticated(c, "User not found")
	}

	c.Locals("userID", user.ID)
	c.Locals("role", user.Role)
	c.Locals("currentUser", &user)

	return c.Next()
}

// CurrentUser returns the identity resolved by Protected.
func CurrentUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals("currentUser").(*models.User)
	if !ok || user == nil {
		return nil, errors.New("no authenticated user in context")
	}
	return user, nil
}

// extractUserID handles multiple potential formats of user ID in token
func extractUserID(claims jwt.MapClaims) (uint, error) {
	idVal, ok := claims["id"]
	if !ok {
		return 0, errors.New("no ID found in claims")
	}
	switch v := idVal.(type) {
	case float64:
		return uint(v), nil
	case uint:
		return v, nil
	case int:
		return uint(v), nil
	default:
		return 0, errors.New("unsupported ID type in claims")
	}
}

func unauthenticated(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": msg,
	})
}

// jwtError handles missing, malformed and expired tokens.
func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":   "Unauthorized",
		"message": "Invalid or expired token",
	})
}
