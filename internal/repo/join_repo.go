package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/go-medtrack-backend/internal/domain"
)

// joinedRow is one result row of the medication/description left join.
// Description columns carry a d_ prefix; DMedicationID is NULL when the
// medication has no description.
type joinedRow struct {
	Medicine      medicineRow `gorm:"embedded"`
	DMedicationID *int64      `gorm:"column:d_medication_id"`
	DDosageForm   *string     `gorm:"column:d_dosage_form"`
	DShape        *string     `gorm:"column:d_shape"`
	DColors       *string     `gorm:"column:d_colors"`
	DSize         *string     `gorm:"column:d_size"`
	DNumbers      *string     `gorm:"column:d_numbers"`
	DLetters      *string     `gorm:"column:d_letters"`
	DSymbols      *string     `gorm:"column:d_symbols"`
	DTexture      *string     `gorm:"column:d_texture"`
	DOdor         *string     `gorm:"column:d_odor"`
}

func (r joinedRow) toDomain() (domain.MedicationWithDescription, error) {
	m, err := r.Medicine.toDomain()
	if err != nil {
		return domain.MedicationWithDescription{}, err
	}
	out := domain.MedicationWithDescription{Medication: m}
	if r.DMedicationID != nil {
		out.Description = &domain.Description{
			MedicationID: *r.DMedicationID,
			DosageForm:   r.DDosageForm,
			Shape:        r.DShape,
			Colors:       r.DColors,
			Size:         r.DSize,
			Numbers:      r.DNumbers,
			Letters:      r.DLetters,
			Symbols:      r.DSymbols,
			Texture:      r.DTexture,
			Odor:         r.DOdor,
		}
	}
	return out, nil
}

// joinSQL builds the left join with identifiers quoted for the active
// dialect; the table names are mixed case.
func joinSQL(db *gorm.DB) string {
	var b strings.Builder
	b.WriteString("SELECT m.*")
	for _, col := range descriptionColumns {
		b.WriteString(", d.")
		b.WriteString(col)
		b.WriteString(" AS d_")
		b.WriteString(col)
	}
	b.WriteString(" FROM ")
	db.Dialector.QuoteTo(&b, tableMedicine)
	b.WriteString(" m LEFT JOIN ")
	db.Dialector.QuoteTo(&b, tableDescription)
	b.WriteString(" d ON d.medication_id = m.id ORDER BY m.id ASC")
	return b.String()
}

// ListMedicationsWithDescriptions returns every medication paired with its
// description, if any, in one query ordered by medication id. Medications
// without a description appear with a nil Description.
func ListMedicationsWithDescriptions(ctx context.Context, db *gorm.DB) ([]domain.MedicationWithDescription, error) {
	var rows []joinedRow
	if err := db.WithContext(ctx).Raw(joinSQL(db)).Scan(&rows).Error; err != nil {
		return nil, classifyRead(err)
	}
	out := make([]domain.MedicationWithDescription, 0, len(rows))
	for _, r := range rows {
		item, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
