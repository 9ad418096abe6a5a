package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/huepil/consultorio-backend/internal/authz"
	"github.com/huepil/consultorio-backend/internal/dto"
	"github.com/huepil/consultorio-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	resp, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	profile, err := h.authService.CreateUser(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.authService.ListUsers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	profile, err := h.authService.GetProfile(identity.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}
