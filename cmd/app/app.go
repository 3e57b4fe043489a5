package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"flowerdelivery/cmd"
	"flowerdelivery/internal/adapters/out/postgres"
	redisadapter "flowerdelivery/internal/adapters/out/redis"
	"flowerdelivery/internal/core/ports"
	"flowerdelivery/internal/pkg/clock"

	gormlogger "gorm.io/gorm/logger"
)

// openApp connects to the database and, when configured, to Redis. The
// returned close function releases both connections.
func openApp(ctx context.Context, cfg cmd.Config, logger *slog.Logger) (cmd.CompositionRoot, func(), error) {
	clk, err := clock.LoadZoned(cfg.TimeZone)
	if err != nil {
		return cmd.CompositionRoot{}, nil, err
	}

	level := gormlogger.Warn
	if cfg.DBLogSilent {
		level = gormlogger.Silent
	}
	db, err := postgres.Open(cfg.DSN(), level)
	if err != nil {
		return cmd.CompositionRoot{}, nil, fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return cmd.CompositionRoot{}, nil, err
	}
	closers := []func() error{sqlDB.Close}

	var cache ports.ContactCache
	if cfg.RedisAddr != "" {
		client, err := redisadapter.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Warn("contact cache disabled", "addr", cfg.RedisAddr, "error", err)
		} else {
			cache = redisadapter.NewContactCache(client, redisadapter.DefaultTTL)
			closers = append(closers, client.Close)
		}
	}

	closeAll := func() {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = append(errs, closers[i]())
		}
		if err := errors.Join(errs...); err != nil {
			logger.Warn("close connections", "error", err)
		}
	}
	return cmd.NewCompositionRoot(cfg, db, cache, clk, logger), closeAll, nil
}
