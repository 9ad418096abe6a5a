package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTurnoRequest struct {
	PacienteID    string  `json:"paciente_id"`
	ProfesionalID string  `json:"profesional_id"`
	Fecha         string  `json:"fecha"`
	Centro        *string `json:"centro"`
	Servicio      *string `json:"servicio"`
	Notas         *string `json:"notas"`
}

type UpdateEstadoRequest struct {
	Estado string `json:"estado"`
}

// TurnoFilters are the list query parameters. Zero values mean
// "no filter"; a profesional's ProfesionalID is always forced to self.
type TurnoFilters struct {
	Desde         *time.Time
	Hasta         *time.Time
	ProfesionalID *uuid.UUID
	PacienteID    *uuid.UUID
	Estado        string
}

// TurnoResponse is an appointment row with patient and professional
// display fields flattened in, as the agenda views consume it.
type TurnoResponse struct {
	ID                  uuid.UUID  `json:"id"`
	PacienteID          uuid.UUID  `json:"paciente_id"`
	ProfesionalID       uuid.UUID  `json:"profesional_id"`
	Fecha               time.Time  `json:"fecha"`
	Centro              *string    `json:"centro"`
	Servicio            *string    `json:"servicio"`
	Estado              string     `json:"estado"`
	Notas               *string    `json:"notas"`
	CreatedBy           *uuid.UUID `json:"created_by"`
	CreatedAt           time.Time  `json:"created_at"`
	PacienteApellido    string     `json:"paciente_apellido"`
	PacienteNombre      string     `json:"paciente_nombre"`
	PacienteDNI         *string    `json:"paciente_dni"`
	PacienteTelefono    *string    `json:"paciente_telefono"`
	ProfesionalNombre   string     `json:"profesional_nombre"`
	ProfesionalApellido string     `json:"profesional_apellido"`
	Especialidad        *string    `json:"especialidad"`
}
