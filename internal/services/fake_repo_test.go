package services

import (
	"context"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/tbourn/go-medtrack-backend/internal/domain"
	"github.com/tbourn/go-medtrack-backend/internal/repo"
)

// ----- Fake repo -----

// fakeRepo is an in-memory MedicationRepo. Set err to make every call fail.
type fakeRepo struct {
	mu     sync.Mutex
	nextID int64
	meds   map[int64]domain.Medication
	descs  map[int64]domain.Description
	err    error

	// capture args
	lastInsert domain.MedicationInput
	calls      int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{meds: map[int64]domain.Medication{}, descs: map[int64]domain.Description{}}
}

func (r *fakeRepo) add(m domain.Medication) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	m.ID = r.nextID
	r.meds[m.ID] = m
	return m.ID
}

func (r *fakeRepo) InsertMedicine(ctx context.Context, db *gorm.DB, in domain.MedicationInput) (int64, error) {
	r.mu.Lock()
	r.calls++
	r.lastInsert = in
	err := r.err
	r.mu.Unlock()
	if err != nil {
		return 0, err
	}
	return r.add(domain.Medication{
		Name: in.Name, DosageQuantity: in.DosageQuantity, DosageUnit: in.DosageUnit,
		FrequencyHours: in.FrequencyHours, LastTaken: in.LastTaken, Route: in.Route,
		UsageRequired: in.UsageRequired, Quantity: in.Quantity,
	}), nil
}

func (r *fakeRepo) GetMedicine(ctx context.Context, db *gorm.DB, id int64) (*domain.Medication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	m, ok := r.meds[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *fakeRepo) sorted() []domain.Medication {
	out := make([]domain.Medication, 0, len(r.meds))
	for _, m := range r.meds {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeRepo) ListMedicines(ctx context.Context, db *gorm.DB) ([]domain.Medication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := r.sorted()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeRepo) ListSchedulable(ctx context.Context, db *gorm.DB) ([]domain.Medication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.Medication
	for _, m := range r.sorted() {
		if m.Schedulable() {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeRepo) InsertDescription(ctx context.Context, db *gorm.DB, in domain.DescriptionInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.meds[in.MedicationID]; !ok {
		return repo.ErrUnknownMedication
	}
	if _, ok := r.descs[in.MedicationID]; ok {
		return repo.ErrDuplicateDescription
	}
	r.descs[in.MedicationID] = domain.Description{MedicationID: in.MedicationID, Shape: in.Shape, Colors: in.Colors}
	return nil
}

func (r *fakeRepo) GetDescription(ctx context.Context, db *gorm.DB, medicationID int64) (*domain.Description, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	d, ok := r.descs[medicationID]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *fakeRepo) ListDescriptions(ctx context.Context, db *gorm.DB) ([]domain.Description, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.Description, 0, len(r.descs))
	for _, m := range r.sorted() {
		if d, ok := r.descs[m.ID]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListMedicationsWithDescriptions(ctx context.Context, db *gorm.DB) ([]domain.MedicationWithDescription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.MedicationWithDescription
	for _, m := range r.sorted() {
		item := domain.MedicationWithDescription{Medication: m}
		if d, ok := r.descs[m.ID]; ok {
			item.Description = &d
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *fakeRepo) MedicinesStats(ctx context.Context, db *gorm.DB) (int64, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, 0, r.err
	}
	return int64(len(r.meds)), r.nextID, nil
}

func (r *fakeRepo) DescriptionsStats(ctx context.Context, db *gorm.DB) (int64, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, 0, r.err
	}
	var hi int64
	for id := range r.descs {
		if id > hi {
			hi = id
		}
	}
	return int64(len(r.descs)), hi, nil
}

// ----- Real store -----

// newSQLite opens a temp-file SQLite store with the schema created.
func newSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repo.OpenSQLite(filepath.Join(t.TempDir(), "services_test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close(db) })
	if err := repo.CreateTables(context.Background(), db); err != nil {
		t.Fatalf("CreateTables: %v", err)
	}
	return db
}

func ptr[T any](v T) *T { return &v }

func validInput(name string) domain.MedicationInput {
	return domain.MedicationInput{
		Name:           name,
		DosageQuantity: 1,
		DosageUnit:     "tablet",
		FrequencyHours: ptr(6.0),
		Route:          "oral",
		UsageRequired:  true,
		Quantity:       30,
	}
}
