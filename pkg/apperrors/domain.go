package apperrors

import (
	"net/http"
)

// Factories and predefined errors for the marketplace domain.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and the
// like) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrInsufficientPermissions is returned when a user attempts an action
// their role does not allow.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrDeadlinePassed is returned when a student applies to an internship
// whose application deadline has passed.
var ErrDeadlinePassed = New(
	CodeInvalidOperation,
	"applications",
	"Application deadline has passed",
	http.StatusBadRequest,
)

// ErrAlreadyApplied is returned on a second application to the same
// internship by the same student.
var ErrAlreadyApplied = New(
	CodeAlreadyExists,
	"applications",
	"You have already applied to this internship",
	http.StatusConflict,
)
