package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List medications with their descriptions",
	Long: `List every medication together with its physical description, ordered by id.

Examples:
  medctl list
  medctl list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	items, err := a.meds.ListWithDescriptions(cmd.Context())
	if err != nil {
		return err
	}
	if jsonFlag {
		return writeJSON(cmd.OutOrStdout(), items)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDOSE\tROUTE\tEVERY\tLAST TAKEN\tFORM\tCOLORS")
	for _, it := range items {
		form, colors := "-", "-"
		if it.Description != nil {
			form, colors = orDash(it.Description.DosageForm), orDash(it.Description.Colors)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s %s\t%s\t%s\t%s\t%s\t%s\n",
			it.ID, it.Name, strconv.FormatFloat(it.DosageQuantity, 'f', -1, 64), it.DosageUnit,
			it.Route, hours(it.FrequencyHours), stamp(it.LastTaken), form, colors)
	}
	return tw.Flush()
}
