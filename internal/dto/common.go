package dto

// ErrorResponse represents an error response. Internal failures carry a
// generic message only; detail stays in the server log.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse represents a bare success acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse represents the response structure for health checks
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
}
