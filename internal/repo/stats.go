// Package repo implements the data persistence layer for medications,
// backed by GORM. This file provides small aggregate queries used for
// conditional responses (weak ETags) in the HTTP layer.
//
// Rows are never updated or deleted individually, so between schema changes
// a table's row count and highest key move whenever its content does. A drop
// or reset can restore earlier values; callers combine these with a schema
// generation.
package repo

import (
	"context"

	"gorm.io/gorm"
)

// MedicinesStats returns the number of medications and the highest id.
// Both are 0 for an empty table.
func MedicinesStats(ctx context.Context, db *gorm.DB) (count int64, maxID int64, err error) {
	return tableStats(ctx, db, &medicineRow{}, "id")
}

// DescriptionsStats returns the number of descriptions and the highest
// medication_id among them.
func DescriptionsStats(ctx context.Context, db *gorm.DB) (count int64, maxID int64, err error) {
	return tableStats(ctx, db, &descriptionRow{}, "medication_id")
}

func tableStats(ctx context.Context, db *gorm.DB, model any, key string) (int64, int64, error) {
	var count int64
	q := db.WithContext(ctx).Model(model)
	if err := q.Count(&count).Error; err != nil {
		return 0, 0, classifyRead(err)
	}
	if count == 0 {
		return 0, 0, nil
	}

	var row struct {
		Key int64 `gorm:"column:k"`
	}
	err := db.WithContext(ctx).Model(model).
		Select(key + " AS k").
		Order(key + " desc").
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return 0, 0, classifyRead(err)
	}
	return count, row.Key, nil
}
