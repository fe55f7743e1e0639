package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tbourn/go-medtrack-backend/internal/services"
)

var overdueAllFlag bool

var overdueCmd = &cobra.Command{
	Use:   "overdue",
	Short: "Show medications whose dose is overdue",
	Long: `Show required medications whose dosing interval has fully elapsed since
the last dose, most overdue first. With --all, show every scheduled
medication ordered by next due time.`,
	Args: cobra.NoArgs,
	RunE: runOverdue,
}

func init() {
	overdueCmd.Flags().BoolVar(&overdueAllFlag, "all", false, "Show the full schedule")
	rootCmd.AddCommand(overdueCmd)
}

func runOverdue(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	var rep services.DoseReport
	if overdueAllFlag {
		rep, err = a.schedule.Upcoming(cmd.Context())
	} else {
		rep, err = a.schedule.Overdue(cmd.Context())
	}
	if err != nil {
		return err
	}
	if jsonFlag {
		return writeJSON(cmd.OutOrStdout(), rep)
	}
	if rep.Count == 0 {
		msg := "nothing overdue"
		if overdueAllFlag {
			msg = "nothing scheduled"
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), msg)
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEVERY\tLAST TAKEN\tNEXT DUE\tRATIO\tOVERDUE")
	for _, it := range rep.Items {
		freq := it.FrequencyHours
		last, next := it.LastTaken, it.NextDueAt
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%t\n",
			it.MedicationID, it.Name, hours(&freq), stamp(&last), stamp(&next),
			strconv.FormatFloat(it.Ratio, 'f', 2, 64), it.Overdue)
	}
	return tw.Flush()
}
