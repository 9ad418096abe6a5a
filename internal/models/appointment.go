package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment states. The field is a flat enumeration: any state may
// move to any other state, cancellation is a state rather than a row
// removal.
const (
	EstadoReservado          = "reservado"
	EstadoPresente           = "presente"
	EstadoAusente            = "ausente"
	EstadoCancelado          = "cancelado"
	EstadoAusenteProfesional = "ausente_profesional"
)

func ValidEstado(estado string) bool {
	switch estado {
	case EstadoReservado, EstadoPresente, EstadoAusente, EstadoCancelado, EstadoAusenteProfesional:
		return true
	}
	return false
}

// Appointment is a turno between a patient and a professional.
// Rows are never deleted, only status-transitioned.
type Appointment struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PacienteID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"paciente_id"`
	ProfesionalID uuid.UUID  `gorm:"type:uuid;not null;index" json:"profesional_id"`
	Fecha         time.Time  `gorm:"not null;index" json:"fecha"`
	Centro        *string    `gorm:"size:120" json:"centro"`
	Servicio      *string    `gorm:"size:120" json:"servicio"`
	Estado        string     `gorm:"size:30;not null;default:'reservado'" json:"estado"`
	Notas         *string    `gorm:"type:text" json:"notas"`
	CreatedBy     *uuid.UUID `gorm:"type:uuid" json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`

	Paciente    Patient `gorm:"foreignKey:PacienteID" json:"-"`
	Profesional User    `gorm:"foreignKey:ProfesionalID" json:"-"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Estado == "" {
		a.Estado = EstadoReservado
	}
	return nil
}
