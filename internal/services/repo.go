package services

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/tbourn/go-medtrack-backend/internal/domain"
)

// MedicationRepo defines the repository contract required by the services.
// The repo package's free functions satisfy it through a thin shim.
type MedicationRepo interface {
	// InsertMedicine validates and stores a medication, returning its id.
	InsertMedicine(ctx context.Context, db *gorm.DB, in domain.MedicationInput) (int64, error)

	// GetMedicine returns (nil, nil) when the medication does not exist.
	GetMedicine(ctx context.Context, db *gorm.DB, id int64) (*domain.Medication, error)

	// ListMedicines returns all medications ordered by name.
	ListMedicines(ctx context.Context, db *gorm.DB) ([]domain.Medication, error)

	// ListSchedulable returns medications eligible for overdue evaluation.
	ListSchedulable(ctx context.Context, db *gorm.DB) ([]domain.Medication, error)

	// InsertDescription attaches a description to an existing medication.
	InsertDescription(ctx context.Context, db *gorm.DB, in domain.DescriptionInput) error

	// GetDescription returns (nil, nil) when no description exists.
	GetDescription(ctx context.Context, db *gorm.DB, medicationID int64) (*domain.Description, error)

	// ListDescriptions returns all descriptions ordered by medication id.
	ListDescriptions(ctx context.Context, db *gorm.DB) ([]domain.Description, error)

	// ListMedicationsWithDescriptions returns the left join ordered by id.
	ListMedicationsWithDescriptions(ctx context.Context, db *gorm.DB) ([]domain.MedicationWithDescription, error)

	// MedicinesStats returns the row count and highest id of the Medicine table.
	MedicinesStats(ctx context.Context, db *gorm.DB) (int64, int64, error)

	// DescriptionsStats returns the row count and highest medication id of
	// the MedicineDescription table.
	DescriptionsStats(ctx context.Context, db *gorm.DB) (int64, int64, error)
}

// orNew returns mu, or a fresh mutex when mu is nil.
func orNew(mu *sync.RWMutex) *sync.RWMutex {
	if mu == nil {
		return &sync.RWMutex{}
	}
	return mu
}
