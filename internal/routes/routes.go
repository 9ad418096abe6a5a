package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/huepil/consultorio-backend/internal/config"
	"github.com/huepil/consultorio-backend/internal/dto"
	"github.com/huepil/consultorio-backend/internal/handlers"
	"github.com/huepil/consultorio-backend/internal/middleware"
	"github.com/huepil/consultorio-backend/internal/models"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	patientHandler *handlers.PatientHandler,
	turnoHandler *handlers.TurnoHandler,
	historiaHandler *handlers.HistoriaHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	jwt := middleware.JWTProtected(cfg)

	// Auth. Login gets a stricter limit: 10 req/min per IP.
	auth := api.Group("/auth")
	auth.Post("/login", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), authHandler.Login)
	auth.Get("/me", jwt, authHandler.Me)
	auth.Post("/usuarios", jwt, middleware.RequireRoles(models.RolAdmin), authHandler.CreateUser)
	auth.Get("/usuarios", jwt, middleware.RequireRoles(models.RolAdmin, models.RolSecretaria), authHandler.ListUsers)

	// Patients
	patients := api.Group("/patients", jwt)
	patients.Get("/", patientHandler.List)
	patients.Post("/", middleware.RequireRoles(models.RolSecretaria, models.RolAdmin), patientHandler.Create)
	patients.Get("/:id", patientHandler.GetByID)
	patients.Put("/:id", middleware.RequireRoles(models.RolSecretaria, models.RolAdmin), patientHandler.Update)

	// Turnos. /hoy is registered before /:id so the literal segment wins.
	turnos := api.Group("/turnos", jwt)
	turnos.Post("/", middleware.RequireRoles(models.RolSecretaria, models.RolAdmin), turnoHandler.Create)
	turnos.Get("/", turnoHandler.List)
	turnos.Get("/hoy", middleware.RequireRoles(models.RolProfesional), turnoHandler.Today)
	turnos.Patch("/:id/estado", middleware.RequireRoles(models.RolSecretaria, models.RolAdmin, models.RolProfesional), turnoHandler.UpdateEstado)
	turnos.Get("/:id", turnoHandler.GetByID)

	// Historias clínicas
	historias := api.Group("/historias", jwt)
	historias.Post("/", middleware.RequireRoles(models.RolProfesional), historiaHandler.Create)
	historias.Get("/paciente/:paciente_id", historiaHandler.ListByPatient)
	historias.Get("/:id", historiaHandler.GetByID)
	historias.Put("/:id", middleware.RequireRoles(models.RolProfesional), historiaHandler.Update)

	// Unknown API paths answer a generic 404.
	api.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Endpoint not found"})
	})

	// Static front-end; any non-API path falls back to index.html.
	app.Static("/", cfg.StaticDir)
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendFile(cfg.StaticDir + "/index.html")
	})
}
