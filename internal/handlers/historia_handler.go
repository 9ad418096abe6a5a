package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/huepil/consultorio-backend/internal/authz"
	"github.com/huepil/consultorio-backend/internal/dto"
	"github.com/huepil/consultorio-backend/internal/services"
)

type HistoriaHandler struct {
	historiaService *services.HistoriaService
}

func NewHistoriaHandler(historiaService *services.HistoriaService) *HistoriaHandler {
	return &HistoriaHandler{historiaService: historiaService}
}

func (h *HistoriaHandler) Create(c *fiber.Ctx) error {
	identity, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateHistoriaRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	nota, err := h.historiaService.Create(identity, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(nota)
}

func (h *HistoriaHandler) ListByPatient(c *fiber.Ctx) error {
	identity, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	pacienteID, err := uuid.Parse(c.Params("paciente_id"))
	if err != nil {
		return badRequest(c, "paciente_id inválido")
	}

	historias, err := h.historiaService.ListByPatient(identity, pacienteID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(historias)
}

func (h *HistoriaHandler) GetByID(c *fiber.Ctx) error {
	identity, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "id inválido")
	}

	historia, err := h.historiaService.GetByID(identity, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(historia)
}

func (h *HistoriaHandler) Update(c *fiber.Ctx) error {
	identity, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "id inválido")
	}

	var req dto.UpdateHistoriaRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	nota, err := h.historiaService.Update(identity, id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(nota)
}
