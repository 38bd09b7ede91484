package responses

import "fmt"

// Error codes map 1:1 onto the HTTP statuses surfaced at the boundary.
const (
	CodeSuccess         = 200
	CodeBadRequest      = 400
	CodeUnauthorized    = 401
	CodeForbidden       = 403
	CodeNotFound        = 404
	CodeConflict        = 409
	CodeInternalError   = 500
	CodeValidationError = 400
	CodeAuthError       = 401
)

// FieldError describes a single offending field of a rejected payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is the service-level error carried to the HTTP boundary.
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
	Err     error        `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// New creates an error with a code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap attaches an underlying cause.
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidation builds a validation error carrying per-field detail.
func NewValidation(message string, fields []FieldError) *AppError {
	return &AppError{
		Code:    CodeValidationError,
		Message: message,
		Fields:  fields,
	}
}

// Predefined errors.
var (
	ErrBadRequest      = New(CodeBadRequest, "invalid request")
	ErrUnauthorized    = New(CodeUnauthorized, "unauthorized")
	ErrForbidden       = New(CodeForbidden, "forbidden")
	ErrNotFound        = New(CodeNotFound, "resource not found")
	ErrConflict        = New(CodeConflict, "resource conflict")
	ErrInternalError   = New(CodeInternalError, "internal server error")
	ErrValidationError = New(CodeValidationError, "validation failed")

	ErrInvalidCredentials = New(CodeAuthError, "invalid username or password")
	ErrInvalidToken       = New(CodeUnauthorized, "invalid token")
	ErrTokenExpired       = New(CodeUnauthorized, "token expired")
	ErrRecordNotFound     = New(CodeNotFound, "record not found")
)
