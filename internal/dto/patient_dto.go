package dto

// PatientRequest is the body for both create and full update.
// fecha_nacimiento uses the YYYY-MM-DD date form.
type PatientRequest struct {
	DNI             *string `json:"dni"`
	Apellido        string  `json:"apellido"`
	Nombre          string  `json:"nombre"`
	Telefono        *string `json:"telefono"`
	Email           *string `json:"email"`
	FechaNacimiento *string `json:"fecha_nacimiento"`
	Direccion       *string `json:"direccion"`
	ObraSocial      *string `json:"obra_social"`
	NumeroAfiliado  *string `json:"numero_afiliado"`
}
