package models

// NotesResponse lists every note owned by the current user.
type NotesResponse struct {
	Notes []Note `json:"notes"`
}

// MessageResponse is a generic success payload with a human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request. It never carries
// internal error details.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}
