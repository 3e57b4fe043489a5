package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flowerdelivery/api"
	httpadapter "flowerdelivery/internal/adapters/in/http"
	"flowerdelivery/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(load configLoader) *cobra.Command {
	var (
		migrate  bool
		withJobs bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, closeApp, err := openApp(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer closeApp()

			if migrate {
				if err = postgres.Migrate(ctx, app.DB()); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
			}

			doc, err := api.Load()
			if err != nil {
				return err
			}
			e, err := httpadapter.NewRouter(app.CreateHTTPServer(), doc, logger)
			if err != nil {
				return err
			}

			if withJobs {
				jm := app.CreateJobManager()
				if err = jm.StartAll(); err != nil {
					return err
				}
				defer jm.StopAll()
			}

			addr := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
			errCh := make(chan error, 1)
			go func() {
				errCh <- e.Start(addr)
			}()
			logger.Info("http server started", "addr", addr)

			select {
			case err = <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "create or update the tables before serving")
	cmd.Flags().BoolVar(&withJobs, "jobs", true, "run the daily report and cache warmup jobs")
	return cmd
}
