package middleware

import (
	"Recipedia-Backend/domain"
	"Recipedia-Backend/internal/api/presenters"
	"Recipedia-Backend/pkg/jwt"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware extracts the bearer token, verifies it and attaches
// the normalized principal to the request context. Requests that carry
// nothing usable get 401; requests that carry a token which fails
// verification get 403.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrAuthHeaderMissing)
		}

		// Only the exact "Bearer <token>" scheme is accepted; a glued
		// "Bearer<token>" or any other scheme is a missing token.
		scheme, token, found := strings.Cut(header, " ")
		token = strings.TrimSpace(token)
		if !found || scheme != "Bearer" || token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenMissing)
		}

		claims, err := jwtService.GetClaimsByToken(token)
		if err != nil {
			var expired *domain.TokenExpiredError
			var notActive *domain.TokenNotActiveError
			switch {
			case errors.As(err, &expired):
				return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedTokenInvalid, expired)
			case errors.As(err, &notActive):
				return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedTokenInvalid, notActive)
			default:
				return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedTokenInvalid, err)
			}
		}

		c.Locals("user_id", claims.SubjectID())
		c.Locals("is_admin", claims.IsAdmin)
		c.Locals("claims", claims)
		return c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware; it rejects principals
// without the admin flag.
func (m *middleware) AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isAdmin, ok := c.Locals("is_admin").(bool)
		if !ok || !isAdmin {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, domain.ErrUserNotAllowed)
		}
		return c.Next()
	}
}
