package services

import "errors"

// Sentinel errors for the boundary to map onto HTTP statuses.
var (
	// ErrValidation: missing or malformed required fields (400).
	ErrValidation = errors.New("validation failed")
	// ErrInvalidCredentials: unknown email, inactive account or wrong
	// password. Same error for all three (401).
	ErrInvalidCredentials = errors.New("Credenciales inválidas")
	// ErrDuplicate: unique-constraint collision on email or DNI (400).
	ErrDuplicate = errors.New("duplicate record")
	// ErrNotFound: row absent or filtered out by ownership. An
	// existing-but-not-owned row is indistinguishable from a
	// nonexistent one (404).
	ErrNotFound = errors.New("not found")
	// ErrForbidden: role or patient-access check failed (403).
	ErrForbidden = errors.New("forbidden")
)

// apiError pairs a sentinel (for errors.Is at the boundary) with the
// user-facing message sent in the error envelope.
type apiError struct {
	kind error
	msg  string
}

func (e *apiError) Error() string { return e.msg }
func (e *apiError) Unwrap() error { return e.kind }

func validation(msg string) error { return &apiError{kind: ErrValidation, msg: msg} }
func duplicate(msg string) error  { return &apiError{kind: ErrDuplicate, msg: msg} }
func notFound(msg string) error   { return &apiError{kind: ErrNotFound, msg: msg} }
func forbidden(msg string) error  { return &apiError{kind: ErrForbidden, msg: msg} }
