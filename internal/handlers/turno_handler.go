package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/huepil/consultorio-backend/internal/authz"
	"github.com/huepil/consultorio-backend/internal/dto"
	"github.com/huepil/consultorio-backend/internal/services"
)

type TurnoHandler struct {
	turnoService *services.TurnoService
}

func NewTurnoHandler(turnoService *services.TurnoService) *TurnoHandler {
	return &TurnoHandler{turnoService: turnoService}
}

func (h *TurnoHandler) Create(c *fiber.Ctx) error {
	identity, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateTurnoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	turno, err := h.turnoService.Create(identity, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(turno)
}

func (h *TurnoHandler) List(c *fiber.Ctx) error {
	identity, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	filters, err := parseTurnoFilters(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	turnos, err := h.turnoService.List(identity, filters)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(turnos)
}

func (h *TurnoHandler) Today(c *fiber.Ctx) error {
	identity, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	turnos, err := h.turnoService.Today(identity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(turnos)
}

func (h *TurnoHandler) GetByID(c *fiber.Ctx) error {
	identity, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "id inválido")
	}

	turno, err := h.turnoService.GetByID(identity, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(turno)
}

func (h *TurnoHandler) UpdateEstado(c *fiber.Ctx) error {
	identity, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "id inválido")
	}

	var req dto.UpdateEstadoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	turno, err := h.turnoService.UpdateEstado(identity, id, req.Estado)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(turno)
}

func parseTurnoFilters(c *fiber.Ctx) (dto.TurnoFilters, error) {
	var filters dto.TurnoFilters

	if desde := c.Query("desde"); desde != "" {
		t, err := parseQueryTime(desde)
		if err != nil {
			return filters, err
		}
		filters.Desde = &t
	}
	if hasta := c.Query("hasta"); hasta != "" {
		t, err := parseQueryTime(hasta)
		if err != nil {
			return filters, err
		}
		filters.Hasta = &t
	}
	if estado := c.Query("estado"); estado != "" {
		filters.Estado = estado
	}
	if pid := c.Query("profesional_id"); pid != "" {
		id, err := uuid.Parse(pid)
		if err != nil {
			return filters, errInvalidFilter("profesional_id")
		}
		filters.ProfesionalID = &id
	}
	if pid := c.Query("paciente_id"); pid != "" {
		id, err := uuid.Parse(pid)
		if err != nil {
			return filters, errInvalidFilter("paciente_id")
		}
		filters.PacienteID = &id
	}

	return filters, nil
}

// parseQueryTime accepts either a full RFC 3339 timestamp or a bare
// date, which the agenda UI sends for day-range filters.
func parseQueryTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, errInvalidFilter("fecha")
	}
	return t, nil
}

func errInvalidFilter(name string) error { return errors.New(name + " inválido") }
