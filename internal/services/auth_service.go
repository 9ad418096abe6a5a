package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/huepil/consultorio-backend/internal/config"
	"github.com/huepil/consultorio-backend/internal/dto"
	"github.com/huepil/consultorio-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Login verifies the credentials and issues a signed session token.
// Unknown email, inactive account and wrong password all return
// ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *AuthService) Login(email, password string) (*dto.LoginResponse, error) {
	if email == "" || password == "" {
		return nil, validation("Email y contraseña requeridos")
	}

	var user models.User
	if err := s.db.Where("email = ? AND activo = ?", email, true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(&user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: token, User: publicProfile(&user)}, nil
}

// CreateUser registers a staff account. Admin-only at the boundary.
func (s *AuthService) CreateUser(req *dto.CreateUserRequest) (*dto.UserProfile, error) {
	if req.Email == "" || req.Password == "" || req.Rol == "" || req.Nombre == "" || req.Apellido == "" {
		return nil, validation("Campos obligatorios: email, password, rol, nombre, apellido")
	}
	if !models.ValidRol(req.Rol) {
		return nil, validation("Rol inválido")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Rol:          req.Rol,
		Nombre:       req.Nombre,
		Apellido:     req.Apellido,
		Especialidad: req.Especialidad,
		Activo:       true,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, duplicate("El email ya existe")
		}
		return nil, err
	}

	profile := publicProfile(&user)
	return &profile, nil
}

// ListUsers returns every account without the password hash.
func (s *AuthService) ListUsers() ([]dto.UserProfile, error) {
	var users []models.User
	if err := s.db.Order("apellido, nombre").Find(&users).Error; err != nil {
		return nil, err
	}

	profiles := make([]dto.UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, publicProfile(&users[i]))
	}
	return profiles, nil
}

// GetProfile loads the current user's own row.
func (s *AuthService) GetProfile(id uuid.UUID) (*dto.UserProfile, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Usuario no encontrado")
		}
		return nil, err
	}

	profile := publicProfile(&user)
	return &profile, nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID.String(),
		"rol":      user.Rol,
		"email":    user.Email,
		"nombre":   user.Nombre,
		"apellido": user.Apellido,
		"iat":      now.Unix(),
		"exp":      now.Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func publicProfile(u *models.User) dto.UserProfile {
	return dto.UserProfile{
		ID:           u.ID,
		Email:        u.Email,
		Rol:          u.Rol,
		Nombre:       u.Nombre,
		Apellido:     u.Apellido,
		Especialidad: u.Especialidad,
	}
}
