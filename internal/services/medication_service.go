// Package services – MedicationService
//
// This file implements MedicationService, which records medications and
// their physical descriptions and serves the read views over them.
//
// Writes are serialized through a sync.RWMutex shared with SchemaService:
// one write at a time, reads in parallel, and no read ever overlaps a
// schema drop or reset. Absent rows are reported as ErrMedicationNotFound
// or ErrDescriptionNotFound; repository errors are returned unchanged.
//
// Observability: all public methods are OpenTelemetry-instrumented.
package services

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/tbourn/go-medtrack-backend/internal/domain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CatalogStats summarizes both tables; any write or schema change moves at
// least one field.
type CatalogStats struct {
	Generation       uint64
	Medications      int64
	MaxMedicationID  int64
	Descriptions     int64
	MaxDescriptionID int64
}

// Version renders the stats as a compact token suitable for a weak ETag.
func (s CatalogStats) Version() string {
	return fmt.Sprintf("%x-%d-%d-%d-%d", s.Generation, s.Medications, s.MaxMedicationID, s.Descriptions, s.MaxDescriptionID)
}

// MedicationService provides medication and description operations.
type MedicationService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the repository used by this service.
	Repo MedicationRepo
	// Gen is the schema generation shared with SchemaService. Optional.
	Gen *Generation

	mu *sync.RWMutex
}

// NewMedicationService constructs a MedicationService. mu is the write gate
// shared with the other services over the same store; nil creates a
// private one.
func NewMedicationService(db *gorm.DB, r MedicationRepo, mu *sync.RWMutex) *MedicationService {
	return &MedicationService{DB: db, Repo: r, mu: orNew(mu)}
}

// Create stores a new medication and returns it as persisted.
func (s *MedicationService) Create(ctx context.Context, in domain.MedicationInput) (*domain.Medication, error) {
	tr := otel.Tracer("services/MedicationService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(attribute.String("medication.name", in.Name)),
	)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.Repo.InsertMedicine(ctx, s.DB, in)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("medication.id", id))

	m, err := s.Repo.GetMedicine(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMedicationNotFound
	}
	return m, nil
}

// Get returns the medication with the given id.
func (s *MedicationService) Get(ctx context.Context, id int64) (*domain.Medication, error) {
	tr := otel.Tracer("services/MedicationService")
	ctx, span := tr.Start(ctx, "Get",
		trace.WithAttributes(attribute.Int64("medication.id", id)),
	)
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	m, err := s.Repo.GetMedicine(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMedicationNotFound
	}
	return m, nil
}

// List returns every medication ordered by name.
func (s *MedicationService) List(ctx context.Context) ([]domain.Medication, error) {
	tr := otel.Tracer("services/MedicationService")
	ctx, span := tr.Start(ctx, "List")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	items, err := s.Repo.ListMedicines(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, nil
}

// AddDescription attaches a description to an existing medication and
// returns it as persisted.
func (s *MedicationService) AddDescription(ctx context.Context, in domain.DescriptionInput) (*domain.Description, error) {
	tr := otel.Tracer("services/MedicationService")
	ctx, span := tr.Start(ctx, "AddDescription",
		trace.WithAttributes(attribute.Int64("medication.id", in.MedicationID)),
	)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Repo.InsertDescription(ctx, s.DB, in); err != nil {
		return nil, err
	}
	d, err := s.Repo.GetDescription(ctx, s.DB, in.MedicationID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrDescriptionNotFound
	}
	return d, nil
}

// GetDescription returns the description of a medication. It reports
// ErrMedicationNotFound when the medication itself is missing and
// ErrDescriptionNotFound when it exists but is undescribed.
func (s *MedicationService) GetDescription(ctx context.Context, medicationID int64) (*domain.Description, error) {
	tr := otel.Tracer("services/MedicationService")
	ctx, span := tr.Start(ctx, "GetDescription",
		trace.WithAttributes(attribute.Int64("medication.id", medicationID)),
	)
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	d, err := s.Repo.GetDescription(ctx, s.DB, medicationID)
	if err != nil {
		return nil, err
	}
	if d != nil {
		return d, nil
	}
	m, err := s.Repo.GetMedicine(ctx, s.DB, medicationID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMedicationNotFound
	}
	return nil, ErrDescriptionNotFound
}

// ListDescriptions returns every description ordered by medication id.
func (s *MedicationService) ListDescriptions(ctx context.Context) ([]domain.Description, error) {
	tr := otel.Tracer("services/MedicationService")
	ctx, span := tr.Start(ctx, "ListDescriptions")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Repo.ListDescriptions(ctx, s.DB)
}

// ListWithDescriptions returns every medication paired with its
// description, ordered by id.
func (s *MedicationService) ListWithDescriptions(ctx context.Context) ([]domain.MedicationWithDescription, error) {
	tr := otel.Tracer("services/MedicationService")
	ctx, span := tr.Start(ctx, "ListWithDescriptions")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Repo.ListMedicationsWithDescriptions(ctx, s.DB)
}

// Stats returns the aggregate used for conditional responses.
func (s *MedicationService) Stats(ctx context.Context) (CatalogStats, error) {
	tr := otel.Tracer("services/MedicationService")
	ctx, span := tr.Start(ctx, "Stats")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	st := CatalogStats{Generation: s.Gen.Current()}
	var err error
	if st.Medications, st.MaxMedicationID, err = s.Repo.MedicinesStats(ctx, s.DB); err != nil {
		return CatalogStats{}, err
	}
	if st.Descriptions, st.MaxDescriptionID, err = s.Repo.DescriptionsStats(ctx, s.DB); err != nil {
		return CatalogStats{}, err
	}
	return st, nil
}
