package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var searchLimitFlag int

var searchCmd = &cobra.Command{
	Use:   "search QUERY...",
	Short: "Find medications by name, imprint, colour or side effect",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchLimitFlag, "limit", 10, "Maximum results")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	hits, err := a.search.Search(cmd.Context(), strings.Join(args, " "), searchLimitFlag)
	if err != nil {
		return err
	}
	if jsonFlag {
		return writeJSON(cmd.OutOrStdout(), hits)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSCORE")
	for _, h := range hits {
		fmt.Fprintf(tw, "%d\t%s\t%.3f\n", h.ID, h.Name, h.Score)
	}
	return tw.Flush()
}
