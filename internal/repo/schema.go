// Package repo implements the data persistence layer for medications,
// backed by GORM. This file owns the schema lifecycle: create, drop, seed.
package repo

import (
	"context"

	"gorm.io/gorm"
)

// models lists the persisted tables in dependency order.
func models() []any {
	return []any{&medicineRow{}, &descriptionRow{}}
}

// CreateTables ensures both tables exist. Tables that already exist are
// left untouched, so calling it repeatedly never duplicates definitions
// or rows.
func CreateTables(ctx context.Context, db *gorm.DB) error {
	m := db.WithContext(ctx).Migrator()
	for _, model := range models() {
		if m.HasTable(model) {
			continue
		}
		if err := m.CreateTable(model); err != nil {
			return &SchemaError{Op: "create", Err: classifyRead(err)}
		}
	}
	return nil
}

// DropTables removes both tables if present. Any read issued afterwards
// fails until CreateTables runs again.
func DropTables(ctx context.Context, db *gorm.DB) error {
	// DropTable orders dependents first.
	if err := db.WithContext(ctx).Migrator().DropTable(models()...); err != nil {
		return &SchemaError{Op: "drop", Err: classifyRead(err)}
	}
	return nil
}

// ResetSchema drops and recreates both tables, leaving them empty.
func ResetSchema(ctx context.Context, db *gorm.DB) error {
	if err := DropTables(ctx, db); err != nil {
		return err
	}
	return CreateTables(ctx, db)
}

// HasTables reports whether both tables exist.
func HasTables(ctx context.Context, db *gorm.DB) bool {
	m := db.WithContext(ctx).Migrator()
	for _, model := range models() {
		if !m.HasTable(model) {
			return false
		}
	}
	return true
}

// SeedBaselineData inserts the baseline medications and the descriptions
// that go with the first of them, in one transaction. It is meant to run
// once per fresh schema: a second call fails with ErrDuplicateName and
// leaves the data as it was.
func SeedBaselineData(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		meds := baselineMedications()
		ids := make([]int64, 0, len(meds))
		for _, in := range meds {
			id, err := insertMedicine(tx, in)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		for i, in := range baselineDescriptions() {
			in.MedicationID = ids[i]
			if err := insertDescription(tx, in); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &SchemaError{Op: "seed", Err: err}
	}
	return nil
}
