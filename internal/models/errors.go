package models

// ValidationError describes a rejected field on a create payload.
// Handlers surface it as a 400 response.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
