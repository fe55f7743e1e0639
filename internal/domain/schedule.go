package domain

import "time"

// DoseStatus is the result of evaluating one schedulable medication at a
// given instant.
//
// ElapsedHours is the raw difference between EvaluatedAt and LastTaken and
// may be negative when LastTaken lies in the future. Ratio is ElapsedHours
// divided by FrequencyHours, clamped at zero. Overdue is true when the
// whole dosing interval has elapsed (Ratio >= 1).
type DoseStatus struct {
	MedicationID   int64     `json:"medication_id"`
	Name           string    `json:"name"`
	FrequencyHours float64   `json:"frequency_hours"`
	LastTaken      time.Time `json:"last_taken"`
	NextDueAt      time.Time `json:"next_due_at"`
	EvaluatedAt    time.Time `json:"evaluated_at"`
	ElapsedHours   float64   `json:"elapsed_hours"`
	Ratio          float64   `json:"overdue_ratio"`
	Overdue        bool      `json:"overdue"`
}
