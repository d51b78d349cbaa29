package dto

// ErrorResponse is the body of every error response. The message comes from
// a fixed catalog and never carries the underlying cause.
type ErrorResponse struct {
	Message string `json:"message" example:"not found"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}
