package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/huepil/consultorio-backend/internal/config"
	"github.com/huepil/consultorio-backend/internal/dto"
)

// JWTProtected validates the Authorization: Bearer token and stores the
// parsed token in context locals. Malformed, expired or unsigned
// tokens all answer 401.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Token inválido",
			})
		},
	})
}
