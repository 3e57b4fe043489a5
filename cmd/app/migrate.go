package main

import (
	"fmt"

	"flowerdelivery/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

func newMigrateCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the deliveries and contacts tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			app, closeApp, err := openApp(cmd.Context(), cfg, newLogger(cfg))
			if err != nil {
				return err
			}
			defer closeApp()

			if err = postgres.Migrate(cmd.Context(), app.DB()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			return nil
		},
	}
}
