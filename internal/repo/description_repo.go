package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-medtrack-backend/internal/domain"
)

// InsertDescription attaches a physical description to an existing
// medication. The existence check and the insert share one transaction.
//
// Errors:
//   - ErrInvalidMedication (wrapping domain.ErrMissingMedicationID) for a non-positive id
//   - ErrUnknownMedication when the medication does not exist
//   - ErrDuplicateDescription when the medication is already described
func InsertDescription(ctx context.Context, db *gorm.DB, in domain.DescriptionInput) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return insertDescription(tx, in)
	})
}

func insertDescription(tx *gorm.DB, in domain.DescriptionInput) error {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMedication, err)
	}

	var n int64
	if err := tx.Model(&medicineRow{}).Where("id = ?", in.MedicationID).Count(&n).Error; err != nil {
		return classifyRead(err)
	}
	if n == 0 {
		return fmt.Errorf("%w (id %d)", ErrUnknownMedication, in.MedicationID)
	}

	row := newDescriptionRow(in)
	if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
		return classifyWrite(err, ErrDuplicateDescription)
	}
	return nil
}

// GetDescription returns the description of medicationID, or (nil, nil)
// when the medication has none.
func GetDescription(ctx context.Context, db *gorm.DB, medicationID int64) (*domain.Description, error) {
	var row descriptionRow
	err := db.WithContext(ctx).
		Omit(clause.Associations).
		Where("medication_id = ?", medicationID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, classifyRead(err)
	}
	d := row.toDomain()
	return &d, nil
}

// ListDescriptions returns every description ordered by medication id.
func ListDescriptions(ctx context.Context, db *gorm.DB) ([]domain.Description, error) {
	var rows []descriptionRow
	if err := db.WithContext(ctx).Order("medication_id asc").Find(&rows).Error; err != nil {
		return nil, classifyRead(err)
	}
	out := make([]domain.Description, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}
