package common

// ErrorResponse is the wire error shape the frontend binds to
type ErrorResponse struct {
	Error string `json:"error"`
}
