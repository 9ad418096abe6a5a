package dto

import "github.com/google/uuid"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Rol          string  `json:"rol"`
	Nombre       string  `json:"nombre"`
	Apellido     string  `json:"apellido"`
	Especialidad *string `json:"especialidad"`
}

// UserProfile is the public view of a user: everything except the
// password hash.
type UserProfile struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Rol          string    `json:"rol"`
	Nombre       string    `json:"nombre"`
	Apellido     string    `json:"apellido"`
	Especialidad *string   `json:"especialidad"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}
