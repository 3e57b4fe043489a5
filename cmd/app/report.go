package main

import (
	"fmt"

	"flowerdelivery/internal/core/domain/model/kernel"

	"github.com/spf13/cobra"
)

func newReportCmd(load configLoader) *cobra.Command {
	var (
		date string
		dir  string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the spreadsheet of one day's deliveries",
		Long:  "Writes deliveries-<YYMMDD>.xlsx into the report directory. Without --date the current day is used.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if date != "" {
				if err := kernel.ValidateDatePrefix(date); err != nil {
					return fmt.Errorf("--date: %w", err)
				}
			}
			cfg, err := load()
			if err != nil {
				return err
			}
			if dir != "" {
				cfg.ReportDir = dir
			}
			app, closeApp, err := openApp(cmd.Context(), cfg, newLogger(cfg))
			if err != nil {
				return err
			}
			defer closeApp()

			path, err := app.CreateDailyReportJob().Run(cmd.Context(), date)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to report as YYMMDD")
	cmd.Flags().StringVar(&dir, "dir", "", "output directory, overrides REPORT_DIR")
	return cmd
}
