package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/huepil/consultorio-backend/internal/database"
	"github.com/huepil/consultorio-backend/internal/dto"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	if err := database.Ping(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.HealthResponse{
			OK:        false,
			Error:     "Database connection failed",
			Timestamp: timestamp,
		})
	}

	return c.JSON(dto.HealthResponse{
		OK:        true,
		DB:        true,
		Timestamp: timestamp,
	})
}
