// Package services – ScheduleService
//
// This file implements ScheduleService, which answers "what is overdue?"
// and "what is due next?" over the stored medications. The arithmetic
// lives in package overdue; this service captures the evaluation instant
// once per call, loads the schedulable medications and publishes the
// overdue count as a Prometheus gauge.
package services

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/tbourn/go-medtrack-backend/internal/domain"
	"github.com/tbourn/go-medtrack-backend/internal/overdue"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// overdueGauge reports how many medications were overdue at the most
// recent evaluation.
var overdueGauge = prometheus.NewGauge(prometheus.GaugeOpts{
	Name: "medtrack_overdue_medications",
	Help: "Number of medications overdue at the last evaluation.",
})

func init() {
	prometheus.MustRegister(overdueGauge)
}

// Clock returns the current instant.
type Clock func() time.Time

// DoseReport is the result of one evaluation. Every item shares EvaluatedAt.
type DoseReport struct {
	EvaluatedAt time.Time           `json:"evaluated_at"`
	Count       int                 `json:"count"`
	Items       []domain.DoseStatus `json:"items"`
}

// ScheduleService evaluates dose schedules.
type ScheduleService struct {
	DB   *gorm.DB
	Repo MedicationRepo
	// Now defaults to time.Now.
	Now Clock

	mu *sync.RWMutex
}

// NewScheduleService constructs a ScheduleService reading through r.
func NewScheduleService(db *gorm.DB, r MedicationRepo, mu *sync.RWMutex) *ScheduleService {
	return &ScheduleService{DB: db, Repo: r, Now: time.Now, mu: orNew(mu)}
}

// Overdue returns the medications overdue right now, most overdue first.
func (s *ScheduleService) Overdue(ctx context.Context) (DoseReport, error) {
	tr := otel.Tracer("services/ScheduleService")
	ctx, span := tr.Start(ctx, "Overdue")
	defer span.End()

	meds, now, err := s.load(ctx)
	if err != nil {
		return DoseReport{}, err
	}
	items := overdue.Overdue(meds, now)
	overdueGauge.Set(float64(len(items)))

	span.SetAttributes(
		attribute.Int("schedulable.count", len(meds)),
		attribute.Int("overdue.count", len(items)),
	)
	return DoseReport{EvaluatedAt: now, Count: len(items), Items: items}, nil
}

// Upcoming returns the status of every schedulable medication, soonest
// due first. Overdue ones lead the list.
func (s *ScheduleService) Upcoming(ctx context.Context) (DoseReport, error) {
	tr := otel.Tracer("services/ScheduleService")
	ctx, span := tr.Start(ctx, "Upcoming")
	defer span.End()

	meds, now, err := s.load(ctx)
	if err != nil {
		return DoseReport{}, err
	}
	items := overdue.Evaluate(meds, now)

	n := 0
	for _, it := range items {
		if it.Overdue {
			n++
		}
	}
	overdueGauge.Set(float64(n))

	span.SetAttributes(attribute.Int("schedulable.count", len(items)))
	return DoseReport{EvaluatedAt: now, Count: len(items), Items: items}, nil
}

// load reads the schedulable medications and fixes the evaluation instant.
func (s *ScheduleService) load(ctx context.Context) ([]domain.Medication, time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meds, err := s.Repo.ListSchedulable(ctx, s.DB)
	if err != nil {
		return nil, time.Time{}, err
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return meds, now().UTC(), nil
}
