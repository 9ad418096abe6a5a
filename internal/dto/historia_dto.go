package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateHistoriaRequest struct {
	PacienteID   string  `json:"paciente_id"`
	Tipo         string  `json:"tipo"`
	Titulo       string  `json:"titulo"`
	Descripcion  string  `json:"descripcion"`
	Medicamentos *string `json:"medicamentos"`
	Indicaciones *string `json:"indicaciones"`
}

type UpdateHistoriaRequest struct {
	Tipo         string  `json:"tipo"`
	Titulo       string  `json:"titulo"`
	Descripcion  string  `json:"descripcion"`
	Medicamentos *string `json:"medicamentos"`
	Indicaciones *string `json:"indicaciones"`
}

// HistoriaResponse is a clinical note with author (and, for single
// fetches, patient) display fields flattened in.
type HistoriaResponse struct {
	ID                  uuid.UUID `json:"id"`
	PacienteID          uuid.UUID `json:"paciente_id"`
	ProfesionalID       uuid.UUID `json:"profesional_id"`
	Fecha               time.Time `json:"fecha"`
	Tipo                string    `json:"tipo"`
	Titulo              string    `json:"titulo"`
	Descripcion         string    `json:"descripcion"`
	Medicamentos        *string   `json:"medicamentos"`
	Indicaciones        *string   `json:"indicaciones"`
	CreatedAt           time.Time `json:"created_at"`
	ProfesionalNombre   string    `json:"profesional_nombre"`
	ProfesionalApellido string    `json:"profesional_apellido"`
	Especialidad        *string   `json:"especialidad"`
	PacienteApellido    *string   `json:"paciente_apellido,omitempty"`
	PacienteNombre      *string   `json:"paciente_nombre,omitempty"`
}
