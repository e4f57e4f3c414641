package transport

import "time"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// NewError returns an error body.
func NewError(code, message, field string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Field:   field,
	}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string      `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Store     interface{} `json:"store"`
}
