package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Patient is a clinic patient record. DNI is unique when present but
// may be null (newborns, foreign documents).
type Patient struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	DNI             *string    `gorm:"size:20;uniqueIndex" json:"dni"`
	Apellido        string     `gorm:"size:120;not null;index:idx_patients_apellido_nombre,priority:1" json:"apellido"`
	Nombre          string     `gorm:"size:120;not null;index:idx_patients_apellido_nombre,priority:2" json:"nombre"`
	Telefono        *string    `gorm:"size:40" json:"telefono"`
	Email           *string    `gorm:"size:255" json:"email"`
	FechaNacimiento *time.Time `gorm:"type:date" json:"fecha_nacimiento"`
	Direccion       *string    `gorm:"size:255" json:"direccion"`
	ObraSocial      *string    `gorm:"size:120" json:"obra_social"`
	NumeroAfiliado  *string    `gorm:"size:60" json:"numero_afiliado"`
	Activo          bool       `gorm:"not null;default:true" json:"activo"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
