// Package middleware provides authentication, logging and rate limiting
// middleware for the application.
package middleware

import (
	"context"

	"devlink/internal/token"

	"github.com/gofiber/fiber/v2"
)

// TokenHeader is the request header carrying the session token.
const TokenHeader = "x-auth-token"

var tokens *token.Service

// InitMiddleware initializes the auth middleware with the given token service.
func InitMiddleware(t *token.Service) {
	tokens = t
}

// AuthRequired is the access guard for protected routes. It reads the
// session token header, verifies it, and stores the resolved user ID in
// both Fiber locals and the request context, or rejects the request
// with 401 before the handler runs.
func AuthRequired(c *fiber.Ctx) error {
	tokenString := c.Get(TokenHeader)
	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"msg": "Authorization token not provided, Access Denied",
		})
	}

	userID, err := tokens.Verify(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"msg": "Authorization token is invalid, Access Denied",
		})
	}

	c.Locals("userID", userID)
	c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, userID))
	return c.Next()
}

// OptionalAuth resolves the caller's identity when a valid token is present
// but lets the request through either way. Used on public read paths that
// render differently for authenticated callers.
func OptionalAuth(c *fiber.Ctx) error {
	tokenString := c.Get(TokenHeader)
	if tokenString == "" {
		return c.Next()
	}
	// An invalid or expired token on a public path is not fatal; the
	// client will refresh its state on the next guarded call.
	if userID, err := tokens.Verify(tokenString); err == nil {
		c.Locals("userID", userID)
		c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, userID))
	}
	return c.Next()
}
