package services

import (
	"github.com/google/uuid"
	"github.com/huepil/consultorio-backend/internal/authz"
	"github.com/huepil/consultorio-backend/internal/dto"
	"github.com/huepil/consultorio-backend/internal/models"
	"gorm.io/gorm"
)

type HistoriaService struct {
	db *gorm.DB
}

func NewHistoriaService(db *gorm.DB) *HistoriaService {
	return &HistoriaService{db: db}
}

// Create appends a historia clínica. The author is always the acting
// professional from the session, never the request body, and must
// share at least one turno (any status, any date) with the patient.
func (s *HistoriaService) Create(identity authz.Identity, req *dto.CreateHistoriaRequest) (*models.ClinicalNote, error) {
	if req.PacienteID == "" || req.Titulo == "" || req.Descripcion == "" {
		return nil, validation("paciente_id, titulo y descripcion son obligatorios")
	}
	pacienteID, err := uuid.Parse(req.PacienteID)
	if err != nil {
		return nil, validation("paciente_id inválido")
	}
	tipo, err := resolveTipo(req.Tipo)
	if err != nil {
		return nil, err
	}

	ok, err := authz.SharesPatient(s.db, identity.ID, pacienteID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, forbidden("No tiene acceso a este paciente")
	}

	nota := models.ClinicalNote{
		PacienteID:    pacienteID,
		ProfesionalID: identity.ID,
		Tipo:          tipo,
		Titulo:        req.Titulo,
		Descripcion:   req.Descripcion,
		Medicamentos:  req.Medicamentos,
		Indicaciones:  req.Indicaciones,
	}

	if err := s.db.Create(&nota).Error; err != nil {
		return nil, err
	}
	return &nota, nil
}

// ListByPatient returns every historia for the patient, newest first.
// A profesional must pass the shared-appointment gate before any row
// is returned; admin and secretaria see all notes unconditionally.
func (s *HistoriaService) ListByPatient(identity authz.Identity, pacienteID uuid.UUID) ([]dto.HistoriaResponse, error) {
	if identity.IsProfesional() {
		ok, err := authz.SharesPatient(s.db, identity.ID, pacienteID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, forbidden("No tiene acceso a este paciente")
		}
	}

	var historias []dto.HistoriaResponse
	err := s.db.Model(&models.ClinicalNote{}).
		Select("clinical_notes.*, "+
			"u.nombre AS profesional_nombre, u.apellido AS profesional_apellido, "+
			"u.especialidad AS especialidad").
		Joins("JOIN users u ON u.id = clinical_notes.profesional_id").
		Where("clinical_notes.paciente_id = ?", pacienteID).
		Order("clinical_notes.fecha DESC").
		Scan(&historias).Error
	return historias, err
}

// GetByID fetches one historia. For a profesional the row is joined
// against the shared-appointment predicate, so a note on a patient
// they cannot access answers ErrNotFound.
func (s *HistoriaService) GetByID(identity authz.Identity, id uuid.UUID) (*dto.HistoriaResponse, error) {
	query := s.db.Model(&models.ClinicalNote{}).
		Select("clinical_notes.*, " +
			"p.apellido AS paciente_apellido, p.nombre AS paciente_nombre, " +
			"u.nombre AS profesional_nombre, u.apellido AS profesional_apellido, " +
			"u.especialidad AS especialidad").
		Joins("JOIN patients p ON p.id = clinical_notes.paciente_id").
		Joins("JOIN users u ON u.id = clinical_notes.profesional_id").
		Where("clinical_notes.id = ?", id)

	if identity.IsProfesional() {
		query = query.Where(
			"EXISTS (SELECT 1 FROM appointments t WHERE t.paciente_id = clinical_notes.paciente_id AND t.profesional_id = ?)",
			identity.ID,
		)
	}

	var historia dto.HistoriaResponse
	result := query.Limit(1).Scan(&historia)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, notFound("Historia clínica no encontrada")
	}
	return &historia, nil
}

// Update edits a historia. Only the original author may update; a note
// authored by someone else answers ErrNotFound via the WHERE clause.
func (s *HistoriaService) Update(identity authz.Identity, id uuid.UUID, req *dto.UpdateHistoriaRequest) (*models.ClinicalNote, error) {
	if req.Titulo == "" || req.Descripcion == "" {
		return nil, validation("titulo y descripcion son obligatorios")
	}
	tipo, err := resolveTipo(req.Tipo)
	if err != nil {
		return nil, err
	}

	result := s.db.Model(&models.ClinicalNote{}).
		Where("id = ? AND profesional_id = ?", id, identity.ID).
		Select("Tipo", "Titulo", "Descripcion", "Medicamentos", "Indicaciones").
		Updates(models.ClinicalNote{
			Tipo:         tipo,
			Titulo:       req.Titulo,
			Descripcion:  req.Descripcion,
			Medicamentos: req.Medicamentos,
			Indicaciones: req.Indicaciones,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, notFound("Historia clínica no encontrada")
	}

	var nota models.ClinicalNote
	if err := s.db.First(&nota, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &nota, nil
}

func resolveTipo(tipo string) (string, error) {
	if tipo == "" {
		return models.TipoConsulta, nil
	}
	if !models.ValidTipo(tipo) {
		return "", validation("tipo inválido")
	}
	return tipo, nil
}
