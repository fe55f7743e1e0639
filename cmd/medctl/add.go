package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tbourn/go-medtrack-backend/internal/domain"
)

var (
	addDose      float64
	addUnit      string
	addRoute     string
	addEvery     float64
	addLastTaken string
	addRequired  bool
	addQuantity  float64
	addTiming    string
)

var addCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Record a medication",
	Long: `Record a new medication. Names are unique.

Examples:
  medctl add "Vitamin D" --dose 1 --unit capsule --route oral --every 24 --required
  medctl add Ibuprofen --dose 200 --unit mg --route oral --last-taken 2024-05-01T08:00:00Z`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	f := addCmd.Flags()
	f.Float64Var(&addDose, "dose", 1, "Dosage quantity")
	f.StringVar(&addUnit, "unit", "", "Dosage unit, e.g. mg or tablet")
	f.StringVar(&addRoute, "route", "oral", "Route of administration")
	f.Float64Var(&addEvery, "every", 0, "Hours between doses; 0 means as needed")
	f.StringVar(&addLastTaken, "last-taken", "", "Last dose as RFC3339")
	f.BoolVar(&addRequired, "required", false, "Medication must be taken on schedule")
	f.Float64Var(&addQuantity, "quantity", 0, "Remaining supply")
	f.StringVar(&addTiming, "timing", "", "Timing hint, e.g. with breakfast")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	in := domain.MedicationInput{
		Name:           args[0],
		DosageQuantity: addDose,
		DosageUnit:     addUnit,
		Route:          addRoute,
		UsageRequired:  addRequired,
		Quantity:       addQuantity,
	}
	if cmd.Flags().Changed("every") {
		every := addEvery
		in.FrequencyHours = &every
	}
	if addTiming != "" {
		timing := addTiming
		in.Timing = &timing
	}
	if addLastTaken != "" {
		t, err := time.Parse(time.RFC3339, addLastTaken)
		if err != nil {
			return fmt.Errorf("--last-taken: %w", err)
		}
		in.LastTaken = &t
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	m, err := a.meds.Create(cmd.Context(), in)
	if err != nil {
		return err
	}
	if jsonFlag {
		return writeJSON(cmd.OutOrStdout(), m)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "added %s (id %d)\n", m.Name, m.ID)
	return err
}
