// Package domain defines the typed values the medication core works with.
// Storage encodings (0/1 integers, text timestamps) never appear here; the
// repo package converts at the boundary, so everything in this package uses
// real booleans, time.Time and pointer-typed optionals.
package domain

import (
	"errors"
	"strings"
	"time"
)

// Medication is a persisted medication record.
//
// Optional attributes are pointers: a nil FrequencyHours means "as needed"
// (no periodic schedule) and a nil LastTaken means the medication has never
// been taken. Either one keeps the medication out of overdue evaluation.
type Medication struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	DosageQuantity     float64    `json:"dosage_quantity"`
	DosageUnit         string     `json:"dosage_unit"`
	FrequencyHours     *float64   `json:"frequency_hours,omitempty"`
	Timing             *string    `json:"timing,omitempty"`
	LastTaken          *time.Time `json:"last_taken,omitempty"`
	Route              string     `json:"route"`
	SpecialDescription *string    `json:"special_description,omitempty"`
	UsageRequired      bool       `json:"usage_required"`
	UsagePeriod        *int       `json:"usage_period,omitempty"`
	SideEffects        *string    `json:"side_effects,omitempty"`
	Interactions       *string    `json:"interactions,omitempty"`
	Quantity           float64    `json:"quantity"`
}

// Schedulable reports whether the medication takes part in overdue
// evaluation: it must be flagged as required, have a positive dosing
// interval and a recorded last dose.
func (m Medication) Schedulable() bool {
	return m.UsageRequired &&
		m.FrequencyHours != nil && *m.FrequencyHours > 0 &&
		m.LastTaken != nil
}

// MedicationInput carries the caller-supplied fields of a new medication.
// The identifier is assigned by storage and is therefore absent.
type MedicationInput struct {
	Name               string     `json:"name"                          binding:"required" example:"Ibuprofen"`
	DosageQuantity     float64    `json:"dosage_quantity"               example:"1"`
	DosageUnit         string     `json:"dosage_unit"                   binding:"required" example:"tablet"`
	FrequencyHours     *float64   `json:"frequency_hours,omitempty"     example:"6"`
	Timing             *string    `json:"timing,omitempty"              example:"Morning and evening"`
	LastTaken          *time.Time `json:"last_taken,omitempty"          example:"2023-05-15T08:00:00Z"`
	Route              string     `json:"route"                         binding:"required" example:"oral"`
	SpecialDescription *string    `json:"special_description,omitempty" example:"Take with food"`
	UsageRequired      bool       `json:"usage_required"                example:"true"`
	UsagePeriod        *int       `json:"usage_period,omitempty"        example:"7"`
	SideEffects        *string    `json:"side_effects,omitempty"        example:"Upset stomach"`
	Interactions       *string    `json:"interactions,omitempty"        example:"Blood pressure medications"`
	Quantity           float64    `json:"quantity"                      example:"30"`
}

// Validation errors returned by MedicationInput.Validate.
var (
	ErrEmptyName        = errors.New("name must not be empty")
	ErrEmptyDosageUnit  = errors.New("dosage unit must not be empty")
	ErrEmptyRoute       = errors.New("route must not be empty")
	ErrInvalidFrequency = errors.New("frequency hours must be greater than zero")
	ErrNegativeQuantity = errors.New("quantity must not be negative")
	ErrInvalidDosage    = errors.New("dosage quantity must be greater than zero")
)

// Normalize trims surrounding whitespace from the required text fields and
// turns blank optional strings into nil.
func (in MedicationInput) Normalize() MedicationInput {
	in.Name = strings.TrimSpace(in.Name)
	in.DosageUnit = strings.TrimSpace(in.DosageUnit)
	in.Route = strings.TrimSpace(in.Route)
	in.Timing = blankToNil(in.Timing)
	in.SpecialDescription = blankToNil(in.SpecialDescription)
	in.SideEffects = blankToNil(in.SideEffects)
	in.Interactions = blankToNil(in.Interactions)
	if in.LastTaken != nil {
		t := in.LastTaken.UTC()
		in.LastTaken = &t
	}
	return in
}

// Validate checks the invariants a medication must satisfy before it is
// written. It expects a normalized input.
func (in MedicationInput) Validate() error {
	switch {
	case in.Name == "":
		return ErrEmptyName
	case in.DosageUnit == "":
		return ErrEmptyDosageUnit
	case in.Route == "":
		return ErrEmptyRoute
	case in.DosageQuantity <= 0:
		return ErrInvalidDosage
	case in.FrequencyHours != nil && *in.FrequencyHours <= 0:
		return ErrInvalidFrequency
	case in.Quantity < 0:
		return ErrNegativeQuantity
	}
	return nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
