// Package services defines the use cases for medications: recording them,
// describing them, checking which are overdue, searching them and managing
// the schema. This file centralizes service-level error values so callers
// can check them with errors.Is.
//
// Translation into HTTP status codes happens in the handler layer.
// Repository errors (repo.ErrConstraintViolation, repo.ErrStorageUnavailable,
// *repo.SchemaError) pass through services unchanged.
package services

import "errors"

var (
	// ErrMedicationNotFound indicates that the requested medication does not exist.
	ErrMedicationNotFound = errors.New("medication not found")

	// ErrDescriptionNotFound indicates that the medication exists but has no
	// description.
	ErrDescriptionNotFound = errors.New("description not found")

	// ErrEmptyQuery is returned when a search query is blank.
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrQueryTooLong is returned when a search query exceeds MaxQueryRunes.
	ErrQueryTooLong = errors.New("search query too long")
)
