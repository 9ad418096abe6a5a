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

func TestPatientCreateGetRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPatientService(db)
	admin := createUser(t, db, models.RolAdmin, "admin@consultorio.test")

	created, err := svc.Create(&dto.PatientRequest{
		DNI:             ptr("30111222"),
		Apellido:        "Paz",
		Nombre:          "Marta",
		Telefono:        ptr("+54 9 11 5555-0000"),
		Email:           ptr("marta@paciente.test"),
		FechaNacimiento: ptr("1980-04-17"),
		Direccion:       ptr("Av. Siempreviva 742"),
		ObraSocial:      ptr("OSDE"),
		NumeroAfiliado:  ptr("123-456"),
	})
	require.NoError(t, err)

	got, err := svc.GetByID(identityOf(admin), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paz", got.Apellido)
	assert.Equal(t, "Marta", got.Nombre)
	assert.Equal(t, "30111222", *got.DNI)
	assert.Equal(t, "+54 9 11 5555-0000", *got.Telefono)
	assert.Equal(t, "marta@paciente.test", *got.Email)
	assert.Equal(t, "1980-04-17", got.FechaNacimiento.Format("2006-01-02"))
	assert.Equal(t, "Av. Siempreviva 742", *got.Direccion)
	assert.Equal(t, "OSDE", *got.ObraSocial)
	assert.Equal(t, "123-456", *got.NumeroAfiliado)
	assert.True(t, got.Activo)
}

func TestPatientCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPatientService(db)

	_, err := svc.Create(&dto.PatientRequest{Apellido: "Solo"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(&dto.PatientRequest{
		Apellido: "Paz", Nombre: "Marta", FechaNacimiento: ptr("17/04/1980"),
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPatientDuplicateDNIKeepsOriginal(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPatientService(db)

	original, err := svc.Create(&dto.PatientRequest{DNI: ptr("28999000"), Apellido: "Ruiz", Nombre: "Ana"})
	require.NoError(t, err)

	_, err = svc.Create(&dto.PatientRequest{DNI: ptr("28999000"), Apellido: "Otro", Nombre: "Luis"})
	require.ErrorIs(t, err, ErrDuplicate)

	// Original row remains unmodified
	var stored models.Patient
	require.NoError(t, db.First(&stored, "dni = ?", "28999000").Error)
	assert.Equal(t, original.ID, stored.ID)
	assert.Equal(t, "Ruiz", stored.Apellido)
	assert.Equal(t, "Ana", stored.Nombre)
}

func TestPatientListScopedForProfesional(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPatientService(db)
	pro := createUser(t, db, models.RolProfesional, "pro@consultorio.test")
	admin := createUser(t, db, models.RolAdmin, "admin@consultorio.test")

	conTurno := createPatient(t, db, "Atendida", "Clara", ptr("10000001"))
	createPatient(t, db, "Ajena", "Berta", ptr("10000002"))
	createTurno(t, db, conTurno, pro, time.Now())

	// Profesional only sees patients reachable via own appointments
	visible, err := svc.List(identityOf(pro), "")
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, conTurno.ID, visible[0].ID)

	// Admin and secretaria see everything
	all, err := svc.List(identityOf(admin), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPatientSearchCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPatientService(db)
	admin := createUser(t, db, models.RolAdmin, "admin@consultorio.test")

	createPatient(t, db, "Fernández", "Lucía", ptr("31222333"))
	createPatient(t, db, "López", "Pedro", ptr("32555666"))

	byApellido, err := svc.List(identityOf(admin), "fernán")
	require.NoError(t, err)
	require.Len(t, byApellido, 1)
	assert.Equal(t, "Fernández", byApellido[0].Apellido)

	byDNI, err := svc.List(identityOf(admin), "32555")
	require.NoError(t, err)
	require.Len(t, byDNI, 1)
	assert.Equal(t, "López", byDNI[0].Apellido)

	none, err := svc.List(identityOf(admin), "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPatientListOrdering(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPatientService(db)
	admin := createUser(t, db, models.RolAdmin, "admin@consultorio.test")

	createPatient(t, db, "Zárate", "Ana", nil)
	createPatient(t, db, "Acosta", "Beto", nil)
	createPatient(t, db, "Acosta", "Alba", nil)

	patients, err := svc.List(identityOf(admin), "")
	require.NoError(t, err)
	require.Len(t, patients, 3)
	assert.Equal(t, "Alba", patients[0].Nombre)
	assert.Equal(t, "Beto", patients[1].Nombre)
	assert.Equal(t, "Zárate", patients[2].Apellido)
}

func TestPatientGetByIDNonDisclosure(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPatientService(db)
	pro := createUser(t, db, models.RolProfesional, "pro@consultorio.test")
	ajena := createPatient(t, db, "Ajena", "Berta", nil)

	// Existing but not reachable through an own appointment: NotFound,
	// indistinguishable from a nonexistent row.
	_, err := svc.GetByID(identityOf(pro), ajena.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetByID(identityOf(pro), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPatientUpdate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPatientService(db)

	created, err := svc.Create(&dto.PatientRequest{Apellido: "Paz", Nombre: "Marta"})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, &dto.PatientRequest{
		Apellido: "Paz", Nombre: "Marta", Telefono: ptr("11-0000-1111"),
	})
	require.NoError(t, err)
	assert.Equal(t, "11-0000-1111", *updated.Telefono)

	_, err = svc.Update(uuid.New(), &dto.PatientRequest{Apellido: "X", Nombre: "Y"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(created.ID, &dto.PatientRequest{Nombre: "SinApellido"})
	assert.ErrorIs(t, err, ErrValidation)
}
