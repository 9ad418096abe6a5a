package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Staff roles. Rol is fixed at creation time; there is no role-change
// endpoint.
const (
	RolAdmin       = "admin"
	RolSecretaria  = "secretaria"
	RolProfesional = "profesional"
)

func ValidRol(rol string) bool {
	switch rol {
	case RolAdmin, RolSecretaria, RolProfesional:
		return true
	}
	return false
}

// User is a staff account. Accounts are soft-disabled via Activo,
// never hard-deleted.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Rol          string    `gorm:"size:20;not null" json:"rol"`
	Nombre       string    `gorm:"size:120" json:"nombre"`
	Apellido     string    `gorm:"size:120" json:"apellido"`
	Especialidad *string   `gorm:"size:120" json:"especialidad"`
	Activo       bool      `gorm:"not null;default:true" json:"activo"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
