package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create, drop, seed or reset the tables",
}

func schemaAction(use, short, done string, op func(context.Context, app) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			if err := op(cmd.Context(), a); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), done)
			return err
		},
	}
}

func init() {
	schemaCmd.AddCommand(
		schemaAction("create", "Create missing tables", "schema created",
			func(ctx context.Context, a app) error { return a.schema.Create(ctx) }),
		schemaAction("drop", "Drop both tables and every row", "schema dropped",
			func(ctx context.Context, a app) error { return a.schema.Drop(ctx) }),
		schemaAction("seed", "Load the baseline catalog", "baseline data loaded",
			func(ctx context.Context, a app) error { return a.schema.Seed(ctx) }),
		schemaAction("reset", "Drop and recreate both tables", "schema reset",
			func(ctx context.Context, a app) error { return a.schema.Reset(ctx) }),
	)
	rootCmd.AddCommand(schemaCmd)
}
