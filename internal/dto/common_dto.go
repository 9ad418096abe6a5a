package dto

// ErrorResponse is the generic error envelope: {"error": "<message>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	OK        bool   `json:"ok"`
	DB        bool   `json:"db"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}
