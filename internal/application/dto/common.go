package dto

// ErrorResponse cuerpo de error HTTP. Details lleva campo -> mensaje en errores de validación.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

// MessageResponse respuesta simple (por ejemplo tras un DELETE).
type MessageResponse struct {
	Message string `json:"message"`
}
