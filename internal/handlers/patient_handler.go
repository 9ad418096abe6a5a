package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/huepil/consultorio-backend/internal/authz"
	"github.com/huepil/consultorio-backend/internal/dto"
	"github.com/huepil/consultorio-backend/internal/services"
)

type PatientHandler struct {
	patientService *services.PatientService
}

func NewPatientHandler(patientService *services.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

func (h *PatientHandler) List(c *fiber.Ctx) error {
	identity, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	patients, err := h.patientService.List(identity, c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(patients)
}

func (h *PatientHandler) Create(c *fiber.Ctx) error {
	var req dto.PatientRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	patient, err := h.patientService.Create(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(patient)
}

func (h *PatientHandler) GetByID(c *fiber.Ctx) error {
	identity, err := authz.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "id inválido")
	}

	patient, err := h.patientService.GetByID(identity, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(patient)
}

func (h *PatientHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "id inválido")
	}

	var req dto.PatientRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	patient, err := h.patientService.Update(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(patient)
}
