package apperrors

import "errors"

// Error kinds. Every specific error below unwraps to exactly one kind so
// callers and the HTTP layer can classify with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAlreadyExists   = errors.New("already exists")
	ErrNotFound        = errors.New("not found")
)

// Course errors
var (
	ErrCourseNameEmpty = &CustomError{Err: ErrInvalidArgument, Message: "course name cannot be empty"}
	ErrTeacherSetEmpty = &CustomError{Err: ErrInvalidArgument, Message: "course must have at least one teacher"}
	ErrCourseNotFound  = &CustomError{Err: ErrNotFound, Message: "course not found"}
)

// Student errors
var (
	ErrStudentNameEmpty     = &CustomError{Err: ErrInvalidArgument, Message: "student name cannot be empty"}
	ErrStudentAlreadyExists = &CustomError{Err: ErrAlreadyExists, Message: "student with this name is already registered"}
	ErrStudentNotFound      = &CustomError{Err: ErrNotFound, Message: "student not found"}
	ErrEmptyMoveBatch       = &CustomError{Err: ErrInvalidArgument, Message: "move batch cannot be empty"}
)

// Roster errors
var (
	ErrRosterEntryNotFound = &CustomError{Err: ErrNotFound, Message: "roster entry not found"}
)

// Payroll errors
var (
	ErrZeroSalaryPerBlock = &CustomError{Err: ErrInvalidArgument, Message: "salary per block cannot be zero"}
)

// Is returns whether err matches target or any of the errors in errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
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

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
