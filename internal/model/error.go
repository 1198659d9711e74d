package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodeValidation       = "VALIDATION_FAILED"
	ErrCodeServiceNotFound  = "SERVICE_NOT_FOUND"
	ErrCodeInvalidQuantity  = "INVALID_QUANTITY"
	ErrCodeUnknownLocation  = "UNKNOWN_LOCATION"
	ErrCodeInactiveLocation = "INACTIVE_LOCATION"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrServiceNotFound  = NewDomainError(ErrCodeServiceNotFound, "Service not found")
	ErrInvalidQuantity  = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrUnknownLocation  = NewDomainError(ErrCodeUnknownLocation, "Unknown location")
	ErrInactiveLocation = NewDomainError(ErrCodeInactiveLocation, "Location is not yet serviced")
	ErrNotAuthenticated = NewDomainError(ErrCodeUnauthorised, "Not authenticated")
)
