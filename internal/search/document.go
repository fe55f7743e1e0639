package search

import (
	"strings"

	"github.com/tbourn/go-medtrack-backend/internal/domain"
)

// MedicationDocument flattens a medication and its description into a
// searchable document. Absent attributes contribute nothing.
func MedicationDocument(m domain.MedicationWithDescription) Document {
	parts := []string{m.DosageUnit, m.Route}
	parts = appendOpt(parts, m.Timing, m.SpecialDescription, m.SideEffects, m.Interactions)
	if d := m.Description; d != nil {
		parts = appendOpt(parts,
			d.DosageForm, d.Shape, d.Colors, d.Size, d.Numbers,
			d.Letters, d.Symbols, d.Texture, d.Odor,
		)
	}
	return Document{ID: m.ID, Name: m.Name, Text: strings.Join(parts, " ")}
}

// MedicationDocuments maps MedicationDocument over items.
func MedicationDocuments(items []domain.MedicationWithDescription) []Document {
	out := make([]Document, 0, len(items))
	for _, it := range items {
		out = append(out, MedicationDocument(it))
	}
	return out
}

func appendOpt(parts []string, vals ...*string) []string {
	for _, v := range vals {
		if v != nil && *v != "" {
			parts = append(parts, *v)
		}
	}
	return parts
}
