package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Clinical note types.
const (
	TipoConsulta    = "consulta"
	TipoSeguimiento = "seguimiento"
	TipoDiagnostico = "diagnostico"
	TipoTratamiento = "tratamiento"
)

func ValidTipo(tipo string) bool {
	switch tipo {
	case TipoConsulta, TipoSeguimiento, TipoDiagnostico, TipoTratamiento:
		return true
	}
	return false
}

// ClinicalNote is a historia clínica entry authored by a professional
// about a patient. Creating one requires the author to share at least
// one appointment with the patient; only the author may update it.
type ClinicalNote struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PacienteID    uuid.UUID `gorm:"type:uuid;not null;index" json:"paciente_id"`
	ProfesionalID uuid.UUID `gorm:"type:uuid;not null;index" json:"profesional_id"`
	Fecha         time.Time `gorm:"not null" json:"fecha"`
	Tipo          string    `gorm:"size:30;not null;default:'consulta'" json:"tipo"`
	Titulo        string    `gorm:"size:255;not null" json:"titulo"`
	Descripcion   string    `gorm:"type:text;not null" json:"descripcion"`
	Medicamentos  *string   `gorm:"type:text" json:"medicamentos"`
	Indicaciones  *string   `gorm:"type:text" json:"indicaciones"`
	CreatedAt     time.Time `json:"created_at"`

	Paciente    Patient `gorm:"foreignKey:PacienteID" json:"-"`
	Profesional User    `gorm:"foreignKey:ProfesionalID" json:"-"`
}

func (n *ClinicalNote) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.Fecha.IsZero() {
		n.Fecha = time.Now().UTC()
	}
	if n.Tipo == "" {
		n.Tipo = TipoConsulta
	}
	return nil
}
