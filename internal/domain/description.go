package domain

import "errors"

// Description records how a medication physically looks, so it can be told
// apart from other pills. Every attribute is optional. A medication has at
// most one description.
type Description struct {
	MedicationID int64   `json:"medication_id"`
	DosageForm   *string `json:"dosage_form,omitempty"`
	Shape        *string `json:"shape,omitempty"`
	Colors       *string `json:"colors,omitempty"`
	Size         *string `json:"size,omitempty"`
	Numbers      *string `json:"numbers,omitempty"`
	Letters      *string `json:"letters,omitempty"`
	Symbols      *string `json:"symbols,omitempty"`
	Texture      *string `json:"texture,omitempty"`
	Odor         *string `json:"odor,omitempty"`
}

// DescriptionInput is the payload for a new description. MedicationID must
// reference an existing medication.
type DescriptionInput struct {
	MedicationID int64   `json:"medication_id"         example:"1"`
	DosageForm   *string `json:"dosage_form,omitempty" example:"tablet"`
	Shape        *string `json:"shape,omitempty"       example:"round"`
	Colors       *string `json:"colors,omitempty"      example:"white"`
	Size         *string `json:"size,omitempty"        example:"small"`
	Numbers      *string `json:"numbers,omitempty"     example:"500"`
	Letters      *string `json:"letters,omitempty"     example:"IB"`
	Symbols      *string `json:"symbols,omitempty"`
	Texture      *string `json:"texture,omitempty"     example:"smooth"`
	Odor         *string `json:"odor,omitempty"`
}

// ErrMissingMedicationID is returned when a description does not name a
// medication.
var ErrMissingMedicationID = errors.New("medication id is required")

// Normalize turns blank attributes into nil.
func (in DescriptionInput) Normalize() DescriptionInput {
	for _, p := range []**string{
		&in.DosageForm, &in.Shape, &in.Colors, &in.Size, &in.Numbers,
		&in.Letters, &in.Symbols, &in.Texture, &in.Odor,
	} {
		*p = blankToNil(*p)
	}
	return in
}

// Validate checks that the input names a medication.
func (in DescriptionInput) Validate() error {
	if in.MedicationID <= 0 {
		return ErrMissingMedicationID
	}
	return nil
}

// MedicationWithDescription is one row of the left join between
// medications and descriptions. Description is nil when none exists.
type MedicationWithDescription struct {
	Medication
	Description *Description `json:"description"`
}
