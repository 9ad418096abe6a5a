package main

import (
	"log/slog"
	"os"

	"github.com/huepil/consultorio-backend/internal/config"
	"github.com/huepil/consultorio-backend/internal/database"
	"github.com/huepil/consultorio-backend/internal/logging"
	"github.com/huepil/consultorio-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

// One-shot bootstrap: upserts the initial admin account from env vars
// so a fresh deployment has a first login.
func main() {
	logging.Setup()

	cfg := config.Load()

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	nombre := getEnv("ADMIN_NOMBRE", "Administrador")
	apellido := getEnv("ADMIN_APELLIDO", "Sistema")

	if email == "" || password == "" {
		slog.Error("ADMIN_EMAIL and ADMIN_PASSWORD environment variables are required")
		os.Exit(1)
	}

	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		os.Exit(1)
	}

	admin := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Rol:          models.RolAdmin,
		Nombre:       nombre,
		Apellido:     apellido,
		Activo:       true,
	}

	err = database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"password_hash", "rol", "nombre", "apellido", "activo",
		}),
	}).Create(&admin).Error
	if err != nil {
		slog.Error("failed to create admin user", "error", err)
		os.Exit(1)
	}

	slog.Info("admin user ready", "email", email)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
