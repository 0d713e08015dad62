package apperrors

import "errors"

// Common errors
var (
	// Input validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Catalog data errors
	ErrCatalogUnavailable = errors.New("course catalog unavailable")
	ErrCatalogInvalid     = errors.New("course catalog invalid")
)

// Graph errors
var (
	ErrUnknownCourse      = errors.New("unknown course")
	ErrCyclicPrerequisite = errors.New("cyclic prerequisite")
)

// Modeling errors
var (
	ErrNoTermAvailable = errors.New("no offered term in semester cycle")
)

// Solver errors
var (
	ErrSolverFault = errors.New("internal solver fault")
)

// NewValidationError creates a new custom error for invalid request input
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewUnknownCourseError creates a new custom error for a course identifier
// missing from the catalog
func NewUnknownCourseError(message string) error {
	return &CustomError{
		Err:     ErrUnknownCourse,
		Message: message,
	}
}

// NewCyclicPrerequisiteError creates a new custom error for a prerequisite cycle
func NewCyclicPrerequisiteError(message string) error {
	return &CustomError{
		Err:     ErrCyclicPrerequisite,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
