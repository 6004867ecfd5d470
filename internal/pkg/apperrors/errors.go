package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrInvalidArgument = errors.New("invalid argument")
	ErrBadRequest      = errors.New("bad request")
)

// Domain rule errors. Each unwraps to ErrInvalidArgument so callers that only
// care about "the input was wrong" can match on the generic sentinel.
var (
	ErrNotEnrolled        error = NewCustomError(ErrInvalidArgument, "student not in the section")
	ErrCyclicPrerequisite error = NewCustomError(ErrInvalidArgument, "prerequisite would create a cycle")
)

// Course Errors
var (
	ErrCourseNotFound      error = NewCustomError(ErrResourceNotFound, "course not found")
	ErrCourseAlreadyExists error = NewCustomError(ErrResourceAlreadyExists, "course already exists")
	ErrCourseHasDependents error = NewCustomError(ErrConflict, "course is a prerequisite for other courses")
)

// Section Errors
var (
	ErrSectionNotFound      error = NewCustomError(ErrResourceNotFound, "section not found")
	ErrSectionAlreadyExists error = NewCustomError(ErrResourceAlreadyExists, "section already exists")
)

// Student Errors
var (
	ErrStudentNotFound      error = NewCustomError(ErrResourceNotFound, "student not found")
	ErrStudentAlreadyExists error = NewCustomError(ErrResourceAlreadyExists, "student already exists")
)

// Professor Errors
var (
	ErrProfessorNotFound      error = NewCustomError(ErrResourceNotFound, "professor not found")
	ErrProfessorAlreadyExists error = NewCustomError(ErrResourceAlreadyExists, "professor already exists")
)

// InvalidArgument builds an ErrInvalidArgument carrying a description of the
// offending input.
func InvalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
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
