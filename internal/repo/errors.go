// Package repo implements the data persistence layer for medications,
// backed by GORM. This file defines the error taxonomy every repository
// function reports through.
//
// Error semantics:
//   - Constraint failures (duplicate name, unknown medication, invalid
//     values) satisfy errors.Is(err, ErrConstraintViolation) and, more
//     specifically, one of ErrDuplicateName, ErrDuplicateDescription,
//     ErrUnknownMedication or ErrInvalidMedication.
//   - A store that cannot be opened or reached satisfies
//     errors.Is(err, ErrStorageUnavailable).
//   - Reads or writes against tables that do not exist (never created, or
//     dropped) satisfy errors.Is(err, ErrSchemaMissing).
//   - Schema lifecycle failures are *SchemaError values; the cause stays
//     reachable through errors.Is/As.
//   - Single-row lookups report absence as (nil, nil), never as an error.
package repo

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrConstraintViolation is the parent of every integrity error.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrDuplicateName is returned when a medication name is already taken.
	ErrDuplicateName = fmt.Errorf("%w: medication name already exists", ErrConstraintViolation)

	// ErrDuplicateDescription is returned when a medication already has a description.
	ErrDuplicateDescription = fmt.Errorf("%w: medication already has a description", ErrConstraintViolation)

	// ErrUnknownMedication is returned when a description references a
	// medication that does not exist.
	ErrUnknownMedication = fmt.Errorf("%w: medication does not exist", ErrConstraintViolation)

	// ErrInvalidMedication is returned when a medication fails validation
	// or a CHECK constraint.
	ErrInvalidMedication = fmt.Errorf("%w: invalid medication", ErrConstraintViolation)

	// ErrStorageUnavailable is returned when the store cannot be opened or reached.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrSchemaMissing is returned when the tables have not been created.
	ErrSchemaMissing = errors.New("schema has not been created")
)

// SchemaError reports a failed create, drop or seed of the schema.
type SchemaError struct {
	Op  string // "create", "drop" or "seed"
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema %s: %v", e.Op, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// classifyWrite maps a driver error from an insert to the package taxonomy.
// duplicate is the error reported for unique-key violations on the table
// being written.
func classifyWrite(err error, duplicate error) error {
	if err == nil {
		return nil
	}
	// glebarez/sqlite often returns plain-text errors, so fall back to the message.
	low := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(low, "unique constraint failed") ||
		strings.Contains(low, "constraint failed: unique") ||
		strings.Contains(low, "primary key constraint") ||
		strings.Contains(low, "duplicate key") ||
		strings.Contains(low, "duplicate entry"):
		return fmt.Errorf("%w (%v)", duplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated) ||
		strings.Contains(low, "foreign key constraint"):
		return fmt.Errorf("%w (%v)", ErrUnknownMedication, err)
	case strings.Contains(low, "check constraint"):
		return fmt.Errorf("%w (%v)", ErrInvalidMedication, err)
	}
	return classifyRead(err)
}

// classifyRead marks connectivity failures as ErrStorageUnavailable and
// missing tables as ErrSchemaMissing, and passes every other error through
// unchanged.
func classifyRead(err error) error {
	if err == nil {
		return nil
	}
	if unavailable(err) {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if missingTable(err) {
		return fmt.Errorf("%w: %w", ErrSchemaMissing, err)
	}
	return err
}

// missingTable recognizes "table does not exist" across the supported
// drivers: SQLite, Postgres (42P01), MySQL (1146) and SQL Server.
func missingTable(err error) bool {
	if errors.Is(err, ErrSchemaMissing) {
		return false
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "no such table") ||
		strings.Contains(low, "42p01") ||
		(strings.Contains(low, "relation") && strings.Contains(low, "does not exist")) ||
		(strings.Contains(low, "table") && strings.Contains(low, "doesn't exist")) ||
		strings.Contains(low, "invalid object name")
}

func unavailable(err error) bool {
	if errors.Is(err, ErrStorageUnavailable) {
		return false
	}
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) {
		return true
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "database is closed") ||
		strings.Contains(low, "unable to open database") ||
		strings.Contains(low, "connection refused")
}
