// Package overdue decides whether medications are due for another dose.
//
// Everything here is a pure function of its inputs: the evaluation instant
// is always passed in, never read from a clock, and nothing touches
// storage. Callers capture "now" once and reuse it for a whole batch so
// that every status in one result shares the same reference time.
//
// A medication takes part only when it is required, has a positive dosing
// interval and has been taken at least once (domain.Medication.Schedulable).
// For those,
//
//	elapsed = now - lastTaken            (hours, fractional)
//	ratio   = max(elapsed, 0) / frequency
//	overdue = ratio >= 1
//
// so a dose becomes overdue exactly when the full interval has passed.
package overdue

import (
	"sort"
	"time"

	"github.com/tbourn/go-medtrack-backend/internal/domain"
)

// Status evaluates a single medication at now. The boolean is false when
// the medication is not schedulable, in which case the status is zero.
func Status(med domain.Medication, now time.Time) (domain.DoseStatus, bool) {
	if !med.Schedulable() {
		return domain.DoseStatus{}, false
	}
	freq := *med.FrequencyHours
	last := med.LastTaken.UTC()
	now = now.UTC()

	elapsed := now.Sub(last).Hours()
	ratio := 0.0
	if elapsed > 0 {
		ratio = elapsed / freq
	}

	return domain.DoseStatus{
		MedicationID:   med.ID,
		Name:           med.Name,
		FrequencyHours: freq,
		LastTaken:      last,
		NextDueAt:      last.Add(time.Duration(freq * float64(time.Hour))),
		EvaluatedAt:    now,
		ElapsedHours:   elapsed,
		Ratio:          ratio,
		Overdue:        ratio >= 1,
	}, true
}

// Evaluate returns the status of every schedulable medication in meds,
// soonest due first. Equal due times are ordered by medication id.
func Evaluate(meds []domain.Medication, now time.Time) []domain.DoseStatus {
	out := make([]domain.DoseStatus, 0, len(meds))
	for _, m := range meds {
		if st, ok := Status(m, now); ok {
			out = append(out, st)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].NextDueAt.Equal(out[j].NextDueAt) {
			return out[i].NextDueAt.Before(out[j].NextDueAt)
		}
		return out[i].MedicationID < out[j].MedicationID
	})
	return out
}

// Overdue returns only the overdue medications in meds, most overdue
// (highest ratio) first, ties broken by medication id. The result is
// empty, never nil, when nothing is overdue.
func Overdue(meds []domain.Medication, now time.Time) []domain.DoseStatus {
	out := make([]domain.DoseStatus, 0)
	for _, m := range meds {
		if st, ok := Status(m, now); ok && st.Overdue {
			out = append(out, st)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Ratio != out[j].Ratio {
			return out[i].Ratio > out[j].Ratio
		}
		return out[i].MedicationID < out[j].MedicationID
	})
	return out
}

// IsOverdue reports whether med is overdue at now.
func IsOverdue(med domain.Medication, now time.Time) bool {
	st, ok := Status(med, now)
	return ok && st.Overdue
}
