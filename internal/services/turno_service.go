package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/huepil/consultorio-backend/internal/authz"
	"github.com/huepil/consultorio-backend/internal/dto"
	"github.com/huepil/consultorio-backend/internal/models"
	"gorm.io/gorm"
)

type TurnoService struct {
	db *gorm.DB
}

func NewTurnoService(db *gorm.DB) *TurnoService {
	return &TurnoService{db: db}
}

// Create registers a turno with initial estado "reservado". Referential
// integrity of paciente/profesional is enforced by the store's foreign
// keys; a violation surfaces as a validation failure.
func (s *TurnoService) Create(identity authz.Identity, req *dto.CreateTurnoRequest) (*models.Appointment, error) {
	if req.PacienteID == "" || req.ProfesionalID == "" || req.Fecha == "" {
		return nil, validation("paciente_id, profesional_id y fecha son obligatorios")
	}

	pacienteID, err := uuid.Parse(req.PacienteID)
	if err != nil {
		return nil, validation("paciente_id inválido")
	}
	profesionalID, err := uuid.Parse(req.ProfesionalID)
	if err != nil {
		return nil, validation("profesional_id inválido")
	}
	fecha, err := time.Parse(time.RFC3339, req.Fecha)
	if err != nil {
		return nil, validation("fecha inválida; usar ISO 8601")
	}

	turno := models.Appointment{
		PacienteID:    pacienteID,
		ProfesionalID: profesionalID,
		Fecha:         fecha,
		Centro:        req.Centro,
		Servicio:      req.Servicio,
		Estado:        models.EstadoReservado,
		Notas:         req.Notas,
		CreatedBy:     &identity.ID,
	}

	if err := s.db.Create(&turno).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, validation("paciente o profesional inexistente")
		}
		return nil, err
	}
	return &turno, nil
}

// List returns turnos matching the filters, capped at 500 rows ordered
// by fecha ascending. For a profesional the profesional_id filter is
// forced to self, overriding any requested value.
func (s *TurnoService) List(identity authz.Identity, filters dto.TurnoFilters) ([]dto.TurnoResponse, error) {
	query := s.joined().Scopes(authz.ScopeAppointments(identity))

	if filters.Desde != nil {
		query = query.Where("appointments.fecha >= ?", *filters.Desde)
	}
	if filters.Hasta != nil {
		query = query.Where("appointments.fecha < ?", *filters.Hasta)
	}
	if filters.Estado != "" {
		query = query.Where("appointments.estado = ?", filters.Estado)
	}
	if filters.PacienteID != nil {
		query = query.Where("appointments.paciente_id = ?", *filters.PacienteID)
	}
	if !identity.IsProfesional() && filters.ProfesionalID != nil {
		query = query.Where("appointments.profesional_id = ?", *filters.ProfesionalID)
	}

	var turnos []dto.TurnoResponse
	err := query.Order("appointments.fecha ASC").Limit(500).Scan(&turnos).Error
	return turnos, err
}

// Today returns the professional's own turnos for the current
// server-local day, ordered by fecha ascending.
func (s *TurnoService) Today(identity authz.Identity) ([]dto.TurnoResponse, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	var turnos []dto.TurnoResponse
	err := s.joined().
		Where("appointments.profesional_id = ?", identity.ID).
		Where("appointments.fecha >= ? AND appointments.fecha < ?", start, end).
		Order("appointments.fecha ASC").
		Scan(&turnos).Error
	return turnos, err
}

// GetByID fetches one turno. A profesional only sees their own rows;
// an existing-but-not-owned turno answers ErrNotFound.
func (s *TurnoService) GetByID(identity authz.Identity, id uuid.UUID) (*dto.TurnoResponse, error) {
	var turno dto.TurnoResponse
	result := s.joined().
		Scopes(authz.ScopeAppointments(identity)).
		Where("appointments.id = ?", id).
		Limit(1).
		Scan(&turno)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, notFound("Turno no encontrado")
	}
	return &turno, nil
}

// UpdateEstado moves a turno to any of the five estados. There is no
// transition graph: backwards moves and no-ops are allowed. The
// ownership filter for a profesional lives inside the UPDATE itself,
// so a non-owned turno is indistinguishable from a nonexistent one.
func (s *TurnoService) UpdateEstado(identity authz.Identity, id uuid.UUID, estado string) (*dto.TurnoResponse, error) {
	if !models.ValidEstado(estado) {
		return nil, validation("Estado inválido")
	}

	update := s.db.Model(&models.Appointment{}).Where("id = ?", id)
	if identity.IsProfesional() {
		update = update.Where("profesional_id = ?", identity.ID)
	}

	result := update.Update("estado", estado)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, notFound("Turno no encontrado")
	}

	return s.GetByID(identity, id)
}

func (s *TurnoService) joined() *gorm.DB {
	return s.db.Model(&models.Appointment{}).
		Select("appointments.*, " +
			"p.apellido AS paciente_apellido, p.nombre AS paciente_nombre, " +
			"p.dni AS paciente_dni, p.telefono AS paciente_telefono, " +
			"u.nombre AS profesional_nombre, u.apellido AS profesional_apellido, " +
			"u.especialidad AS especialidad").
		Joins("JOIN patients p ON p.id = appointments.paciente_id").
		Joins("JOIN users u ON u.id = appointments.profesional_id")
}
