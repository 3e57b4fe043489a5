package main

import (
	"context"
	"log/slog"
	"os"

	"flowerdelivery/cmd"

	"github.com/spf13/cobra"
)

// configLoader reads the configuration once the flags are parsed.
type configLoader func() (cmd.Config, error)

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "flowerdelivery",
		Short:         "Flower delivery lifecycle manager",
		Long:          "Registers flower deliveries, moves them through pickup, delivery and settlement, and keeps the address book of businesses.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	load := func() (cmd.Config, error) {
		return cmd.LoadConfig(envFile)
	}
	root.AddCommand(newServeCmd(load))
	root.AddCommand(newMigrateCmd(load))
	root.AddCommand(newReportCmd(load))
	root.AddCommand(newBoardCmd(load))
	return root
}

func execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newLogger(cfg cmd.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
}
