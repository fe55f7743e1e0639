// Package repo implements the data persistence layer for medications,
// backed by GORM. This file provides repository functions for the
// Medicine table.
//
// All functions accept a *gorm.DB handle, so they work the same inside a
// transaction or on the pool. They hold no business logic beyond input
// validation and error classification.
//
// Functions:
//
//   - InsertMedicine(ctx, db, in) -> int64, error
//     Validates and inserts one medication, returning its new id.
//
//   - GetMedicine(ctx, db, id) -> *domain.Medication, error
//     Fetches one medication; (nil, nil) when absent.
//
//   - ListMedicines(ctx, db) -> []domain.Medication, error
//     Returns every medication ordered by name, then id.
//
//   - ListSchedulable(ctx, db) -> []domain.Medication, error
//     Returns only medications eligible for overdue evaluation, ordered by id.
package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tbourn/go-medtrack-backend/internal/domain"
)

// InsertMedicine validates in and stores it as a new medication. Validation
// failures wrap ErrInvalidMedication; a taken name yields ErrDuplicateName.
// Nothing is written when an error is returned.
func InsertMedicine(ctx context.Context, db *gorm.DB, in domain.MedicationInput) (int64, error) {
	return insertMedicine(db.WithContext(ctx), in)
}

func insertMedicine(tx *gorm.DB, in domain.MedicationInput) (int64, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidMedication, err)
	}
	row := newMedicineRow(in)
	if err := tx.Create(&row).Error; err != nil {
		return 0, classifyWrite(err, ErrDuplicateName)
	}
	return row.ID, nil
}

// GetMedicine fetches the medication with the given id. A missing row is
// not an error: it returns (nil, nil).
func GetMedicine(ctx context.Context, db *gorm.DB, id int64) (*domain.Medication, error) {
	var row medicineRow
	err := db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, classifyRead(err)
	}
	m, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMedicines returns every medication ordered by name ascending. Ties
// (impossible while names are unique) fall back to id.
func ListMedicines(ctx context.Context, db *gorm.DB) ([]domain.Medication, error) {
	var rows []medicineRow
	err := db.WithContext(ctx).
		Order("name asc").
		Order("id asc").
		Find(&rows).Error
	if err != nil {
		return nil, classifyRead(err)
	}
	return medicinesToDomain(rows)
}

// ListSchedulable returns the medications that can ever be overdue:
// required, with a positive frequency and a recorded last dose.
func ListSchedulable(ctx context.Context, db *gorm.DB) ([]domain.Medication, error) {
	var rows []medicineRow
	err := db.WithContext(ctx).
		Where("usage_required = ?", 1).
		Where("frequency_hours IS NOT NULL AND frequency_hours > 0").
		Where("last_taken IS NOT NULL AND last_taken <> ''").
		Order("id asc").
		Find(&rows).Error
	if err != nil {
		return nil, classifyRead(err)
	}
	return medicinesToDomain(rows)
}
