package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-medtrack-backend/internal/domain"
)

// Repository adapts the package's free functions to method form, so
// services can depend on an interface and tests can swap in fakes.
type Repository struct{}

// InsertMedicine proxies InsertMedicine.
func (Repository) InsertMedicine(ctx context.Context, db *gorm.DB, in domain.MedicationInput) (int64, error) {
	return InsertMedicine(ctx, db, in)
}

// GetMedicine proxies GetMedicine.
func (Repository) GetMedicine(ctx context.Context, db *gorm.DB, id int64) (*domain.Medication, error) {
	return GetMedicine(ctx, db, id)
}

// ListMedicines proxies ListMedicines.
func (Repository) ListMedicines(ctx context.Context, db *gorm.DB) ([]domain.Medication, error) {
	return ListMedicines(ctx, db)
}

// ListSchedulable proxies ListSchedulable.
func (Repository) ListSchedulable(ctx context.Context, db *gorm.DB) ([]domain.Medication, error) {
	return ListSchedulable(ctx, db)
}

// InsertDescription proxies InsertDescription.
func (Repository) InsertDescription(ctx context.Context, db *gorm.DB, in domain.DescriptionInput) error {
	return InsertDescription(ctx, db, in)
}

// GetDescription proxies GetDescription.
func (Repository) GetDescription(ctx context.Context, db *gorm.DB, medicationID int64) (*domain.Description, error) {
	return GetDescription(ctx, db, medicationID)
}

// ListDescriptions proxies ListDescriptions.
func (Repository) ListDescriptions(ctx context.Context, db *gorm.DB) ([]domain.Description, error) {
	return ListDescriptions(ctx, db)
}

// ListMedicationsWithDescriptions proxies ListMedicationsWithDescriptions.
func (Repository) ListMedicationsWithDescriptions(ctx context.Context, db *gorm.DB) ([]domain.MedicationWithDescription, error) {
	return ListMedicationsWithDescriptions(ctx, db)
}

// MedicinesStats proxies MedicinesStats.
func (Repository) MedicinesStats(ctx context.Context, db *gorm.DB) (int64, int64, error) {
	return MedicinesStats(ctx, db)
}

// DescriptionsStats proxies DescriptionsStats.
func (Repository) DescriptionsStats(ctx context.Context, db *gorm.DB) (int64, int64, error) {
	return DescriptionsStats(ctx, db)
}
