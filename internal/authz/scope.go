package authz

import (
	"github.com/google/uuid"
	"github.com/huepil/consultorio-backend/internal/models"
	"gorm.io/gorm"
)

// Row-level visibility, one declarative scope per resource. Admin and
// secretaria see every row; a profesional only sees rows reachable
// through their own appointments. Every query path applies these
// scopes rather than trusting an earlier check.

// ScopeAppointments restricts appointment queries to the requesting
// professional's own rows.
func ScopeAppointments(id Identity) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !id.IsProfesional() {
			return db
		}
		return db.Where("appointments.profesional_id = ?", id.ID)
	}
}

// ScopePatients restricts patient queries for a profesional to
// patients sharing at least one appointment with them, any status.
func ScopePatients(id Identity) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !id.IsProfesional() {
			return db
		}
		sub := db.Session(&gorm.Session{NewDB: true}).
			Model(&models.Appointment{}).
			Select("paciente_id").
			Where("profesional_id = ?", id.ID)
		return db.Where("patients.id IN (?)", sub)
	}
}

// SharesPatient reports whether the professional has at least one
// appointment with the patient. This is the sole access gate for
// clinical notes; it ignores status and date.
func SharesPatient(db *gorm.DB, profesionalID, pacienteID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&models.Appointment{}).
		Where("paciente_id = ? AND profesional_id = ?", pacienteID, profesionalID).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}
