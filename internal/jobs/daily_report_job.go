package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"flowerdelivery/internal/core/application/usecases/queries"
	"flowerdelivery/internal/core/domain/model/delivery"
	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/pkg/clock"

	"github.com/robfig/cron/v3"
)

// DefaultDailyReportSpec runs the report at 23:00 every day, with seconds.
const DefaultDailyReportSpec = "0 0 23 * * *"

type ListDeliveriesHandler interface {
	Handle(ctx context.Context, query queries.ListDeliveriesQuery) ([]queries.DeliveryView, error)
}

type ReportRenderer interface {
	Render(date string, views []queries.DeliveryView) ([]byte, error)
}

// DailyReportJob writes the spreadsheet of the day's deliveries into a directory.
type DailyReportJob struct {
	handler  ListDeliveriesHandler
	renderer ReportRenderer
	clock    clock.Clock
	dir      string
	spec     string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDailyReportJob schedules the report with a six-field cron spec
// evaluated in the clock's time zone. An empty spec uses DefaultDailyReportSpec.
func NewDailyReportJob(
	handler ListDeliveriesHandler,
	renderer ReportRenderer,
	clk clock.Clock,
	dir string,
	spec string,
	logger *slog.Logger,
) *DailyReportJob {
	if spec == "" {
		spec = DefaultDailyReportSpec
	}
	return &DailyReportJob{
		handler:  handler,
		renderer: renderer,
		clock:    clk,
		dir:      dir,
		spec:     spec,
		cron:     cron.New(cron.WithSeconds(), cron.WithLocation(clk.Now().Location())),
		logger:   logger.With("component", "daily_report_job"),
	}
}

// Run writes the report of the given YYMMDD day and returns the file path.
// An empty date means today.
func (j *DailyReportJob) Run(ctx context.Context, date string) (string, error) {
	if date == "" {
		date = kernel.DatePrefix(j.clock.Now())
	}

	query, err := queries.NewListDeliveriesQuery(nil, delivery.ViewAll, date)
	if err != nil {
		return "", err
	}
	views, err := j.handler.Handle(ctx, query)
	if err != nil {
		return "", fmt.Errorf("list deliveries of %s: %w", date, err)
	}

	data, err := j.renderer.Render(date, views)
	if err != nil {
		return "", fmt.Errorf("render report of %s: %w", date, err)
	}

	if err = os.MkdirAll(j.dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(j.dir, "deliveries-"+date+".xlsx")
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Start schedules the report.
func (j *DailyReportJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		path, err := j.Run(ctx, "")
		if err != nil {
			j.logger.ErrorContext(ctx, "Daily report job failed", "error", err)
			return
		}
		j.logger.InfoContext(ctx, "Daily report written", "path", path)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily report job started", "spec", j.spec, "dir", j.dir)
	return nil
}

// Stop stops the daily report job.
func (j *DailyReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily report job stopped")
}
