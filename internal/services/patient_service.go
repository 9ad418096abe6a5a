package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/huepil/consultorio-backend/internal/authz"
	"github.com/huepil/consultorio-backend/internal/dto"
	"github.com/huepil/consultorio-backend/internal/models"
	"gorm.io/gorm"
)

type PatientService struct {
	db *gorm.DB
}

func NewPatientService(db *gorm.DB) *PatientService {
	return &PatientService{db: db}
}

// List returns patients visible to the identity, capped at 100 rows
// ordered by apellido then nombre. q matches apellido, nombre or dni
// as a case-insensitive substring.
func (s *PatientService) List(identity authz.Identity, q string) ([]models.Patient, error) {
	query := s.db.Model(&models.Patient{}).Scopes(authz.ScopePatients(identity))

	if q = strings.TrimSpace(q); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(apellido) LIKE ? OR LOWER(nombre) LIKE ? OR LOWER(dni) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var patients []models.Patient
	err := query.Order("apellido, nombre").Limit(100).Find(&patients).Error
	return patients, err
}

// GetByID fetches one patient. For a profesional the ownership scope
// applies, so a patient they share no appointment with answers
// ErrNotFound rather than revealing its existence.
func (s *PatientService) GetByID(identity authz.Identity, id uuid.UUID) (*models.Patient, error) {
	var patient models.Patient
	err := s.db.Scopes(authz.ScopePatients(identity)).First(&patient, "patients.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Paciente no encontrado")
		}
		return nil, err
	}
	return &patient, nil
}

// Create registers a patient. Secretaria/admin only at the boundary.
func (s *PatientService) Create(req *dto.PatientRequest) (*models.Patient, error) {
	patient, err := patientFromRequest(req)
	if err != nil {
		return nil, err
	}
	patient.Activo = true

	if err := s.db.Create(patient).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, duplicate("El DNI ya existe")
		}
		return nil, err
	}
	return patient, nil
}

// Update replaces the mutable fields of an existing patient.
func (s *PatientService) Update(id uuid.UUID, req *dto.PatientRequest) (*models.Patient, error) {
	patient, err := patientFromRequest(req)
	if err != nil {
		return nil, err
	}

	result := s.db.Model(&models.Patient{}).
		Where("id = ?", id).
		Select("DNI", "Apellido", "Nombre", "Telefono", "Email", "FechaNacimiento", "Direccion", "ObraSocial", "NumeroAfiliado").
		Updates(patient)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, duplicate("El DNI ya existe")
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, notFound("Paciente no encontrado")
	}

	var updated models.Patient
	if err := s.db.First(&updated, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func patientFromRequest(req *dto.PatientRequest) (*models.Patient, error) {
	if req.Apellido == "" || req.Nombre == "" {
		return nil, validation("Apellido y nombre son obligatorios")
	}

	patient := &models.Patient{
		DNI:            req.DNI,
		Apellido:       req.Apellido,
		Nombre:         req.Nombre,
		Telefono:       req.Telefono,
		Email:          req.Email,
		Direccion:      req.Direccion,
		ObraSocial:     req.ObraSocial,
		NumeroAfiliado: req.NumeroAfiliado,
	}

	if req.FechaNacimiento != nil && *req.FechaNacimiento != "" {
		fecha, err := time.Parse("2006-01-02", *req.FechaNacimiento)
		if err != nil {
			return nil, validation("fecha_nacimiento inválida; usar YYYY-MM-DD")
		}
		patient.FechaNacimiento = &fecha
	}

	return patient, nil
}
