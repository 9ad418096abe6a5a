package services

import (
	"testing"
	"time"

	"github.com/huepil/consultorio-backend/internal/authz"
	"github.com/huepil/consultorio-backend/internal/config"
	"github.com/huepil/consultorio-backend/internal/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "secreto123"

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// One shared in-memory database per test
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Appointment{},
		&models.ClinicalNote{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: 12 * time.Hour,
	}
}

func createUser(t *testing.T, db *gorm.DB, rol, email string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Rol:          rol,
		Nombre:       "Nombre",
		Apellido:     "Apellido",
		Activo:       true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createPatient(t *testing.T, db *gorm.DB, apellido, nombre string, dni *string) models.Patient {
	t.Helper()

	patient := models.Patient{
		DNI:      dni,
		Apellido: apellido,
		Nombre:   nombre,
		Activo:   true,
	}
	require.NoError(t, db.Create(&patient).Error)
	return patient
}

func createTurno(t *testing.T, db *gorm.DB, paciente models.Patient, profesional models.User, fecha time.Time) models.Appointment {
	t.Helper()

	turno := models.Appointment{
		PacienteID:    paciente.ID,
		ProfesionalID: profesional.ID,
		Fecha:         fecha,
		Estado:        models.EstadoReservado,
	}
	require.NoError(t, db.Create(&turno).Error)
	return turno
}

func identityOf(u models.User) authz.Identity {
	return authz.Identity{
		ID:       u.ID,
		Rol:      u.Rol,
		Email:    u.Email,
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
	}
}

func ptr(s string) *string { return &s }
