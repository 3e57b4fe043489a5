package jobs

import (
	"context"
	"log/slog"

	"flowerdelivery/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultContactCacheWarmupSpec refills the contact cache every five minutes.
const DefaultContactCacheWarmupSpec = "0 */5 * * * *"

type ListContactsHandler interface {
	Handle(ctx context.Context, query queries.ListContactsQuery) ([]queries.ContactView, error)
}

// ContactCacheWarmupJob reads the whole contact book so an expired cache
// entry is refilled before the next autocomplete request.
type ContactCacheWarmupJob struct {
	handler ListContactsHandler
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewContactCacheWarmupJob(handler ListContactsHandler, spec string, logger *slog.Logger) *ContactCacheWarmupJob {
	if spec == "" {
		spec = DefaultContactCacheWarmupSpec
	}
	return &ContactCacheWarmupJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "contact_cache_warmup_job"),
	}
}

// Run loads every contact once.
func (j *ContactCacheWarmupJob) Run(ctx context.Context) error {
	_, err := j.handler.Handle(ctx, queries.NewListContactsQuery(""))
	return err
}

// Start schedules the warmup.
func (j *ContactCacheWarmupJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Contact cache warmup failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Contact cache warmup job started", "spec", j.spec)
	return nil
}

// Stop stops the warmup job.
func (j *ContactCacheWarmupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Contact cache warmup job stopped")
}
