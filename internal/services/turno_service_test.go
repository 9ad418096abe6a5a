package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/huepil/consultorio-backend/internal/dto"
	"github.com/huepil/consultorio-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnoCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTurnoService(db)
	secretaria := createUser(t, db, models.RolSecretaria, "sec@consultorio.test")
	pro := createUser(t, db, models.RolProfesional, "pro@consultorio.test")
	paciente := createPatient(t, db, "Paz", "Marta", nil)

	turno, err := svc.Create(identityOf(secretaria), &dto.CreateTurnoRequest{
		PacienteID:    paciente.ID.String(),
		ProfesionalID: pro.ID.String(),
		Fecha:         "2026-09-01T10:30:00-03:00",
		Centro:        ptr("Huepil"),
		Servicio:      ptr("kinesiología"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.EstadoReservado, turno.Estado)
	require.NotNil(t, turno.CreatedBy)
	assert.Equal(t, secretaria.ID, *turno.CreatedBy)
}

func TestTurnoCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTurnoService(db)
	secretaria := createUser(t, db, models.RolSecretaria, "sec@consultorio.test")

	_, err := svc.Create(identityOf(secretaria), &dto.CreateTurnoRequest{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(identityOf(secretaria), &dto.CreateTurnoRequest{
		PacienteID:    uuid.New().String(),
		ProfesionalID: uuid.New().String(),
		Fecha:         "mañana a la tarde",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTurnoCreateNonexistentReferences(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTurnoService(db)
	secretaria := createUser(t, db, models.RolSecretaria, "sec@consultorio.test")
	pro := createUser(t, db, models.RolProfesional, "pro@consultorio.test")
	paciente := createPatient(t, db, "Paz", "Marta", nil)

	// Nonexistent patient must fail, never silently succeed
	_, err := svc.Create(identityOf(secretaria), &dto.CreateTurnoRequest{
		PacienteID:    uuid.New().String(),
		ProfesionalID: pro.ID.String(),
		Fecha:         "2026-09-01T10:00:00Z",
	})
	require.ErrorIs(t, err, ErrValidation)

	// Nonexistent professional as well
	_, err = svc.Create(identityOf(secretaria), &dto.CreateTurnoRequest{
		PacienteID:    paciente.ID.String(),
		ProfesionalID: uuid.New().String(),
		Fecha:         "2026-09-01T10:00:00Z",
	})
	require.ErrorIs(t, err, ErrValidation)

	var count int64
	require.NoError(t, db.Model(&models.Appointment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTurnoListScopedForProfesional(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTurnoService(db)
	pro := createUser(t, db, models.RolProfesional, "pro@consultorio.test")
	otra := createUser(t, db, models.RolProfesional, "otra@consultorio.test")
	admin := createUser(t, db, models.RolAdmin, "admin@consultorio.test")
	paciente := createPatient(t, db, "Paz", "Marta", nil)

	propio := createTurno(t, db, paciente, pro, time.Now())
	createTurno(t, db, paciente, otra, time.Now())

	// profesional_id filter pointing at someone else is overridden
	otherID := otra.ID
	turnos, err := svc.List(identityOf(pro), dto.TurnoFilters{ProfesionalID: &otherID})
	require.NoError(t, err)
	require.Len(t, turnos, 1)
	assert.Equal(t, propio.ID, turnos[0].ID)

	// Admin sees both, and can filter by profesional
	all, err := svc.List(identityOf(admin), dto.TurnoFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.List(identityOf(admin), dto.TurnoFilters{ProfesionalID: &otherID})
	require.NoError(t, err)
	assert.Len(t, filtered, 1)
}

func TestTurnoListFilters(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTurnoService(db)
	admin := createUser(t, db, models.RolAdmin, "admin@consultorio.test")
	pro := createUser(t, db, models.RolProfesional, "pro@consultorio.test")
	paciente := createPatient(t, db, "Paz", "Marta", ptr("30111222"))

	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	primero := createTurno(t, db, paciente, pro, base)
	segundo := createTurno(t, db, paciente, pro, base.AddDate(0, 0, 7))
	require.NoError(t, db.Model(&models.Appointment{}).Where("id = ?", segundo.ID).Update("estado", models.EstadoCancelado).Error)

	desde := base.AddDate(0, 0, 1)
	tarde, err := svc.List(identityOf(admin), dto.TurnoFilters{Desde: &desde})
	require.NoError(t, err)
	require.Len(t, tarde, 1)
	assert.Equal(t, segundo.ID, tarde[0].ID)

	hasta := base.AddDate(0, 0, 1)
	temprano, err := svc.List(identityOf(admin), dto.TurnoFilters{Hasta: &hasta})
	require.NoError(t, err)
	require.Len(t, temprano, 1)
	assert.Equal(t, primero.ID, temprano[0].ID)

	cancelados, err := svc.List(identityOf(admin), dto.TurnoFilters{Estado: models.EstadoCancelado})
	require.NoError(t, err)
	require.Len(t, cancelados, 1)
	assert.Equal(t, segundo.ID, cancelados[0].ID)

	// Display fields joined into each row
	assert.Equal(t, "Paz", cancelados[0].PacienteApellido)
	assert.Equal(t, "30111222", *cancelados[0].PacienteDNI)
	assert.Equal(t, "Apellido", cancelados[0].ProfesionalApellido)
}

func TestTurnoUpdateEstadoAcceptsAllFiveStates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTurnoService(db)
	admin := createUser(t, db, models.RolAdmin, "admin@consultorio.test")
	pro := createUser(t, db, models.RolProfesional, "pro@consultorio.test")
	paciente := createPatient(t, db, "Paz", "Marta", nil)
	turno := createTurno(t, db, paciente, pro, time.Now())

	// No transition graph: every state is reachable from every other,
	// including backwards moves like cancelado -> reservado.
	sequence := []string{
		models.EstadoPresente,
		models.EstadoAusente,
		models.EstadoCancelado,
		models.EstadoReservado,
		models.EstadoAusenteProfesional,
	}
	for _, estado := range sequence {
		updated, err := svc.UpdateEstado(identityOf(admin), turno.ID, estado)
		require.NoError(t, err, "estado %s", estado)
		assert.Equal(t, estado, updated.Estado)
	}
}

func TestTurnoUpdateEstadoRejectsUnknownState(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTurnoService(db)
	admin := createUser(t, db, models.RolAdmin, "admin@consultorio.test")
	pro := createUser(t, db, models.RolProfesional, "pro@consultorio.test")
	paciente := createPatient(t, db, "Paz", "Marta", nil)
	turno := createTurno(t, db, paciente, pro, time.Now())

	for _, identity := range []models.User{admin, pro} {
		_, err := svc.UpdateEstado(identityOf(identity), turno.ID, "confirmado")
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestTurnoUpdateEstadoNonDisclosure(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTurnoService(db)
	pro := createUser(t, db, models.RolProfesional, "pro@consultorio.test")
	otra := createUser(t, db, models.RolProfesional, "otra@consultorio.test")
	paciente := createPatient(t, db, "Paz", "Marta", nil)
	ajeno := createTurno(t, db, paciente, otra, time.Now())

	// Not theirs: NotFound, never Forbidden
	_, err := svc.UpdateEstado(identityOf(pro), ajeno.ID, models.EstadoPresente)
	require.ErrorIs(t, err, ErrNotFound)
	require.NotErrorIs(t, err, ErrForbidden)

	// The owner can transition it
	updated, err := svc.UpdateEstado(identityOf(otra), ajeno.ID, models.EstadoPresente)
	require.NoError(t, err)
	assert.Equal(t, models.EstadoPresente, updated.Estado)
}

func TestTurnoGetByIDScoped(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTurnoService(db)
	pro := createUser(t, db, models.RolProfesional, "pro@consultorio.test")
	otra := createUser(t, db, models.RolProfesional, "otra@consultorio.test")
	admin := createUser(t, db, models.RolAdmin, "admin@consultorio.test")
	paciente := createPatient(t, db, "Paz", "Marta", nil)
	ajeno := createTurno(t, db, paciente, otra, time.Now())

	_, err := svc.GetByID(identityOf(pro), ajeno.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.GetByID(identityOf(admin), ajeno.ID)
	require.NoError(t, err)
	assert.Equal(t, ajeno.ID, got.ID)
	assert.Equal(t, "Paz", got.PacienteApellido)
}

func TestTurnoToday(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTurnoService(db)
	pro := createUser(t, db, models.RolProfesional, "pro@consultorio.test")
	paciente := createPatient(t, db, "Paz", "Marta", nil)

	hoy := createTurno(t, db, paciente, pro, time.Now())
	createTurno(t, db, paciente, pro, time.Now().AddDate(0, 0, 1))
	createTurno(t, db, paciente, pro, time.Now().AddDate(0, 0, -1))

	turnos, err := svc.Today(identityOf(pro))
	require.NoError(t, err)
	require.Len(t, turnos, 1)
	assert.Equal(t, hoy.ID, turnos[0].ID)
}
