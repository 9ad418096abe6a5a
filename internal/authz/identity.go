package authz

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/huepil/consultorio-backend/internal/models"
)

// Identity is the authenticated staff member decoded from the session
// token. It carries everything row-scoping needs; handlers never trust
// ids from the request body for authorization.
type Identity struct {
	ID       uuid.UUID
	Rol      string
	Email    string
	Nombre   string
	Apellido string
}

func (i Identity) IsProfesional() bool {
	return i.Rol == models.RolProfesional
}

// FromContext extracts the identity from the validated JWT in Fiber
// context locals.
func FromContext(c *fiber.Ctx) (Identity, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return Identity{}, errors.New("no token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid claims")
	}

	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return Identity{}, errors.New("invalid sub claim")
	}

	rol, _ := claims["rol"].(string)
	email, _ := claims["email"].(string)
	nombre, _ := claims["nombre"].(string)
	apellido, _ := claims["apellido"].(string)

	return Identity{ID: id, Rol: rol, Email: email, Nombre: nombre, Apellido: apellido}, nil
}
