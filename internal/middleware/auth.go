package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"portfolio-api/internal/service"
)

const AdminEmailContextKey = "admin_email"

// AuthRequired guards the protocol (admin) routes. The only identity the
// system knows is the single configured administrator.
func AuthRequired(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromHeader(c, authService)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": err.Error(),
			})
		}

		c.Locals(AdminEmailContextKey, claims.Email)
		return c.Next()
	}
}

// OptionalAuth resolves the admin identity when a valid token is present but
// lets anonymous requests through. Comment submission uses it so authorship
// is derived from the verified token, never from client input.
func OptionalAuth(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if claims, err := claimsFromHeader(c, authService); err == nil {
			c.Locals(AdminEmailContextKey, claims.Email)
		}
		return c.Next()
	}
}

// GetAdminEmail returns the verified admin identity, or "" for anonymous
// callers.
func GetAdminEmail(c *fiber.Ctx) string {
	email, ok := c.Locals(AdminEmailContextKey).(string)
	if !ok {
		return ""
	}
	return email
}

func claimsFromHeader(c *fiber.Ctx, authService service.AuthService) (*service.Claims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Missing authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid authorization header format")
	}

	claims, err := authService.ValidateAccessToken(parts[1])
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}
	return claims, nil
}
