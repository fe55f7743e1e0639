// Package repo implements the data persistence layer for medications,
// backed by GORM. This file holds the storage rows and the conversion
// between storage encodings and the typed domain values.
//
// Storage conventions:
//   - usage_required is an INTEGER holding 0 or 1.
//   - last_taken is ISO-8601 text (RFC3339, UTC). Rows written by older
//     tooling in SQLite's "YYYY-MM-DD HH:MM:SS" form are read as UTC.
//
// Nothing outside this package sees these encodings.
package repo

import (
	"fmt"
	"time"

	"github.com/tbourn/go-medtrack-backend/internal/domain"
)

const (
	tableMedicine    = "Medicine"
	tableDescription = "MedicineDescription"
)

// medicineRow maps the Medicine table.
type medicineRow struct {
	ID                 int64    `gorm:"column:id;primaryKey;autoIncrement"`
	Name               string   `gorm:"column:name;type:varchar(255);not null;uniqueIndex:ux_medicine_name"`
	DosageQuantity     float64  `gorm:"column:dosage_quantity;not null"`
	DosageUnit         string   `gorm:"column:dosage_unit;type:varchar(64);not null"`
	FrequencyHours     *float64 `gorm:"column:frequency_hours;check:chk_medicine_frequency,frequency_hours IS NULL OR frequency_hours > 0"`
	Timing             *string  `gorm:"column:timing;type:varchar(255)"`
	LastTaken          *string  `gorm:"column:last_taken;type:varchar(40)"`
	Route              string   `gorm:"column:route;type:varchar(64);not null"`
	SpecialDescription *string  `gorm:"column:special_description;type:text"`
	UsageRequired      int      `gorm:"column:usage_required;not null;check:chk_medicine_usage_required,usage_required IN (0,1)"`
	UsagePeriod        *int     `gorm:"column:usage_period"`
	SideEffects        *string  `gorm:"column:side_effects;type:text"`
	Interactions       *string  `gorm:"column:interactions;type:text"`
	Quantity           float64  `gorm:"column:quantity;not null"`
}

// TableName returns the database table name for medicineRow.
func (medicineRow) TableName() string { return tableMedicine }

// descriptionRow maps the MedicineDescription table. MedicationID is both
// the primary key (one description per medication) and the foreign key.
type descriptionRow struct {
	MedicationID int64   `gorm:"column:medication_id;primaryKey;autoIncrement:false"`
	DosageForm   *string `gorm:"column:dosage_form;type:varchar(40)"`
	Shape        *string `gorm:"column:shape;type:varchar(40)"`
	Colors       *string `gorm:"column:colors;type:varchar(64)"`
	Size         *string `gorm:"column:size;type:varchar(40)"`
	Numbers      *string `gorm:"column:numbers;type:varchar(40)"`
	Letters      *string `gorm:"column:letters;type:varchar(40)"`
	Symbols      *string `gorm:"column:symbols;type:varchar(40)"`
	Texture      *string `gorm:"column:texture;type:varchar(40)"`
	Odor         *string `gorm:"column:odor;type:varchar(40)"`

	// Medicine is the described medication. Descriptions go away with it.
	Medicine *medicineRow `gorm:"foreignKey:MedicationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for descriptionRow.
func (descriptionRow) TableName() string { return tableDescription }

// descriptionColumns lists the MedicineDescription columns in table order.
var descriptionColumns = []string{
	"medication_id", "dosage_form", "shape", "colors", "size",
	"numbers", "letters", "symbols", "texture", "odor",
}

func newMedicineRow(in domain.MedicationInput) medicineRow {
	return medicineRow{
		Name:               in.Name,
		DosageQuantity:     in.DosageQuantity,
		DosageUnit:         in.DosageUnit,
		FrequencyHours:     in.FrequencyHours,
		Timing:             in.Timing,
		LastTaken:          encodeTimestamp(in.LastTaken),
		Route:              in.Route,
		SpecialDescription: in.SpecialDescription,
		UsageRequired:      encodeBool(in.UsageRequired),
		UsagePeriod:        in.UsagePeriod,
		SideEffects:        in.SideEffects,
		Interactions:       in.Interactions,
		Quantity:           in.Quantity,
	}
}

func (r medicineRow) toDomain() (domain.Medication, error) {
	lastTaken, err := decodeTimestamp(r.LastTaken)
	if err != nil {
		return domain.Medication{}, fmt.Errorf("medicine %d: %w", r.ID, err)
	}
	return domain.Medication{
		ID:                 r.ID,
		Name:               r.Name,
		DosageQuantity:     r.DosageQuantity,
		DosageUnit:         r.DosageUnit,
		FrequencyHours:     r.FrequencyHours,
		Timing:             r.Timing,
		LastTaken:          lastTaken,
		Route:              r.Route,
		SpecialDescription: r.SpecialDescription,
		UsageRequired:      r.UsageRequired != 0,
		UsagePeriod:        r.UsagePeriod,
		SideEffects:        r.SideEffects,
		Interactions:       r.Interactions,
		Quantity:           r.Quantity,
	}, nil
}

func medicinesToDomain(rows []medicineRow) ([]domain.Medication, error) {
	out := make([]domain.Medication, 0, len(rows))
	for _, r := range rows {
		m, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func newDescriptionRow(in domain.DescriptionInput) descriptionRow {
	return descriptionRow{
		MedicationID: in.MedicationID,
		DosageForm:   in.DosageForm,
		Shape:        in.Shape,
		Colors:       in.Colors,
		Size:         in.Size,
		Numbers:      in.Numbers,
		Letters:      in.Letters,
		Symbols:      in.Symbols,
		Texture:      in.Texture,
		Odor:         in.Odor,
	}
}

func (r descriptionRow) toDomain() domain.Description {
	return domain.Description{
		MedicationID: r.MedicationID,
		DosageForm:   r.DosageForm,
		Shape:        r.Shape,
		Colors:       r.Colors,
		Size:         r.Size,
		Numbers:      r.Numbers,
		Letters:      r.Letters,
		Symbols:      r.Symbols,
		Texture:      r.Texture,
		Odor:         r.Odor,
	}
}

func encodeBool(b bool) int {
	if b {
		return 1
	}
	return 0
}

// timestampLayouts are tried in order when decoding last_taken.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05Z07:00",
}

func encodeTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}

// decodeTimestamp parses stored text. Values without a zone are UTC.
func decodeTimestamp(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, *s, time.UTC); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unparseable last_taken %q", *s)
}
