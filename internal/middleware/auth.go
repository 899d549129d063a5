package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mantra-gor/BillSane-Admin/internal/model"
)

const operatorIDKey = "operatorID"

// TokenValidator resolves a bearer token to an operator id.
type TokenValidator interface {
	ValidateToken(token string) (uint, error)
}

// OperatorLookup loads the operator behind an authenticated request.
type OperatorLookup interface {
	Get(ctx context.Context, id uint) (*model.Operator, error)
}

// Auth rejects requests without a valid "Authorization: Bearer" token and
// stores the operator id for later handlers.
func Auth(tokens TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization token",
			})
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization format",
			})
		}

		operatorID, err := tokens.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization token",
			})
		}

		c.Locals(operatorIDKey, operatorID)
		return c.Next()
	}
}

// AdminOnly must run after Auth.
func AdminOnly(operators OperatorLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		op, err := operators.Get(c.UserContext(), OperatorID(c))
		if err != nil || op.Role != model.RoleAdmin || op.Status != model.OperatorActive {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Administrator role required",
			})
		}
		return c.Next()
	}
}

// OperatorID returns the id stored by Auth, or zero.
func OperatorID(c *fiber.Ctx) uint {
	id, _ := c.Locals(operatorIDKey).(uint)
	return id
}
