package models

// ErrorResponse represents the error body returned for 404, 400 and 500 responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists every validation failure of a request
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// Error messages returned to clients
const (
	MsgBadRequest          = "Bad request"
	MsgNotFound            = "Not found"
	MsgInternalServerError = "Internal server error"
	MsgRestaurantNotFound  = "Restaurant not found"
	MsgPizzaNotFound       = "Pizza not found"
)

// NewErrorResponse creates a new error body with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewValidationErrorResponse creates a new validation error body
func NewValidationErrorResponse(messages ...string) ValidationErrorResponse {
	if messages == nil {
		messages = []string{}
	}
	return ValidationErrorResponse{Errors: messages}
}
