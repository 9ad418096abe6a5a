package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/huepil/consultorio-backend/internal/authz"
	"github.com/huepil/consultorio-backend/internal/dto"
)

// RequireRoles allows the request through only when the authenticated
// identity's role is in the given set. Must run after JWTProtected.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		identity, err := authz.FromContext(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Token inválido",
			})
		}

		if _, ok := allowed[identity.Rol]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: "No autorizado para esta acción",
			})
		}

		return c.Next()
	}
}
