// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// Codes are lowercase snake_case and give clients a stable, machine-readable
// taxonomy alongside the human-readable message. Generic codes mirror HTTP
// status semantics; domain codes cover failures the status alone cannot
// express.
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "duplicate_name",
//	  "message": "medication name already exists"
//	}
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-medtrack-backend/internal/http/middleware"
	"github.com/tbourn/go-medtrack-backend/internal/repo"
	"github.com/tbourn/go-medtrack-backend/internal/services"
)

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeConflict         = "conflict"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeUnavailable      = "storage_unavailable"

	// Domain-specific:
	ErrCodeInvalidMedication = "invalid_medication"
	ErrCodeDuplicateName     = "duplicate_name"
	ErrCodeDuplicateDesc     = "duplicate_description"
	ErrCodeUnknownMedication = "unknown_medication"
	ErrCodeSchemaMissing     = "schema_missing"
	ErrCodeSchemaFailed      = "schema_failed"
	ErrCodeInvalidQuery      = "invalid_query"
)

// failErr maps a service or repository error onto the error envelope.
// Order matters: the specific constraint errors are checked before their
// ErrConstraintViolation parent, and schema errors last so a seed that hit a
// duplicate (or ran without tables) still reports the specific cause.
// Server-side messages are generic; the underlying error is logged.
func failErr(c *gin.Context, err error) {
	var schemaErr *repo.SchemaError
	switch {
	case errors.Is(err, services.ErrMedicationNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "medication not found")
	case errors.Is(err, services.ErrDescriptionNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "description not found")
	case errors.Is(err, services.ErrEmptyQuery), errors.Is(err, services.ErrQueryTooLong):
		fail(c, http.StatusBadRequest, ErrCodeInvalidQuery, err.Error())
	case errors.Is(err, repo.ErrInvalidMedication):
		fail(c, http.StatusBadRequest, ErrCodeInvalidMedication, err.Error())
	case errors.Is(err, repo.ErrDuplicateName):
		fail(c, http.StatusConflict, ErrCodeDuplicateName, "medication name already exists")
	case errors.Is(err, repo.ErrDuplicateDescription):
		fail(c, http.StatusConflict, ErrCodeDuplicateDesc, "medication already has a description")
	case errors.Is(err, repo.ErrUnknownMedication):
		fail(c, http.StatusConflict, ErrCodeUnknownMedication, "medication does not exist")
	case errors.Is(err, repo.ErrConstraintViolation):
		fail(c, http.StatusConflict, ErrCodeConflict, err.Error())
	case errors.Is(err, repo.ErrSchemaMissing):
		fail(c, http.StatusServiceUnavailable, ErrCodeSchemaMissing, "schema has not been created")
	case errors.Is(err, repo.ErrStorageUnavailable):
		fail(c, http.StatusServiceUnavailable, ErrCodeUnavailable, "storage unavailable")
	case errors.As(err, &schemaErr):
		middleware.LoggerFrom(c).Error().Err(err).Msg("schema operation failed")
		fail(c, http.StatusInternalServerError, ErrCodeSchemaFailed, "schema "+schemaErr.Op+" failed")
	default:
		// Driver text stays in the log.
		middleware.LoggerFrom(c).Error().Err(err).Msg("unclassified error")
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal error")
	}
}
