package form

import (
	"fmt"
	"strings"
)

// ErrorType represents the category of a form error
type ErrorType int

const (
	// ErrTypeValidation indicates a field value failed its submit-time check
	ErrTypeValidation ErrorType = iota
	// ErrTypeField indicates an unknown field or an unsupported value for it
	ErrTypeField
	// ErrTypeFile indicates a selected file could not be turned into a handle
	ErrTypeFile
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeField:
		return "Field Error"
	case ErrTypeFile:
		return "File Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// FieldError is an error attached to a single form field
type FieldError struct {
	Type    ErrorType // Category of error
	Field   Field     // Field the error belongs to (empty for file errors)
	Message string    // Human-readable message, shown inline next to the field
	Path    string    // File path (file errors only)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *FieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Type, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a submit-time validation error for field
func NewValidationError(field Field, message string) *FieldError {
	return &FieldError{
		Type:    ErrTypeValidation,
		Field:   field,
		Message: message,
	}
}

// NewFieldError creates an error for an unknown field or unsupported value
func NewFieldError(field Field, message string) *FieldError {
	return &FieldError{
		Type:    ErrTypeField,
		Field:   field,
		Message: message,
	}
}

// NewFileError creates an error for a file that cannot be selected
func NewFileError(path, message string, err error) *FieldError {
	return &FieldError{
		Type:    ErrTypeFile,
		Field:   FieldImage,
		Message: message,
		Path:    path,
		Err:     err,
	}
}

// IsValidationError checks if an error is a submit-time validation error
func IsValidationError(err error) bool {
	if fe, ok := err.(*FieldError); ok {
		return fe.Type == ErrTypeValidation
	}
	return false
}

// IsFieldError checks if an error is an unknown-field or bad-value error
func IsFieldError(err error) bool {
	if fe, ok := err.(*FieldError); ok {
		return fe.Type == ErrTypeField
	}
	return false
}

// IsFileError checks if an error came from file selection
func IsFileError(err error) bool {
	if fe, ok := err.(*FieldError); ok {
		return fe.Type == ErrTypeFile
	}
	return false
}

// FormatErrors formats per-field errors into a multi-line summary in display order.
func FormatErrors(errs Errors) string {
	fields := errs.Fields()
	if len(fields) == 0 {
		return "No validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Form validation failed with %d error(s):\n", len(fields)))
	for i, f := range fields {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, f.Label(), errs[f]))
	}
	return sb.String()
}
