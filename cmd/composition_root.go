package cmd

import (
	"log/slog"

	httpadapter "flowerdelivery/internal/adapters/in/http"
	"flowerdelivery/internal/adapters/out/postgres"
	"flowerdelivery/internal/adapters/out/qrcode"
	"flowerdelivery/internal/adapters/out/xlsx"
	"flowerdelivery/internal/core/application/usecases/commands"
	"flowerdelivery/internal/core/application/usecases/queries"
	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/core/ports"
	"flowerdelivery/internal/jobs"
	"flowerdelivery/internal/pkg/clock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg          Config
	gormDB       *gorm.DB
	contactCache ports.ContactCache
	clock        clock.Clock
	logger       *slog.Logger
	uowFactory   *postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot wires the use cases. contactCache may be nil when Redis
// is not configured.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	contactCache ports.ContactCache,
	clk clock.Clock,
	logger *slog.Logger,
) CompositionRoot {
	var opts []postgres.Option
	if contactCache != nil {
		opts = append(opts, postgres.WithContactCache(contactCache, logger))
	}
	return CompositionRoot{
		cfg:          cfg,
		gormDB:       gormDB,
		contactCache: contactCache,
		clock:        clk,
		logger:       logger,
		uowFactory:   postgres.NewGormUnitOfWorkFactory(gormDB, opts...),
	}
}

// DB exposes the connection for schema migration.
func (c *CompositionRoot) DB() *gorm.DB {
	return c.gormDB
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.uoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateEditDeliveryCommandHandler() commands.EditDeliveryCommandHandler {
	return commands.NewEditDeliveryCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateAdvanceDeliveryStatusCommandHandler() commands.AdvanceDeliveryStatusCommandHandler {
	return commands.NewAdvanceDeliveryStatusCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateSaveContactCommandHandler() commands.SaveContactCommandHandler {
	return commands.NewSaveContactCommandHandler(c.contactUoWFactory())
}

func (c *CompositionRoot) CreateDeleteContactCommandHandler() commands.DeleteContactCommandHandler {
	return commands.NewDeleteContactCommandHandler(c.contactUoWFactory())
}

func (c *CompositionRoot) CreateListDeliveriesQueryHandler() queries.ListDeliveriesQueryHandler {
	return queries.NewListDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTodaySummaryQueryHandler() queries.TodaySummaryQueryHandler {
	return queries.NewTodaySummaryQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateListContactsQueryHandler() queries.ListContactsQueryHandler {
	return queries.NewListContactsQueryHandler(c.gormDB, c.contactCache, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		httpadapter.Handlers{
			CreateDelivery:        c.CreateCreateDeliveryCommandHandler(),
			EditDelivery:          c.CreateEditDeliveryCommandHandler(),
			AdvanceDeliveryStatus: c.CreateAdvanceDeliveryStatusCommandHandler(),
			SaveContact:           c.CreateSaveContactCommandHandler(),
			DeleteContact:         c.CreateDeleteContactCommandHandler(),
			ListDeliveries:        c.CreateListDeliveriesQueryHandler(),
			GetDelivery:           c.CreateGetDeliveryQueryHandler(),
			TodaySummary:          c.CreateTodaySummaryQueryHandler(),
			ListContacts:          c.CreateListContactsQueryHandler(),
		},
		xlsx.NewDeliveryReport(),
		qrcode.NewMapLinkEncoder(qrcode.DefaultSize),
		c.today,
		c.logger,
	)
}

func (c *CompositionRoot) CreateDailyReportJob() *jobs.DailyReportJob {
	return jobs.NewDailyReportJob(
		c.CreateListDeliveriesQueryHandler(),
		xlsx.NewDeliveryReport(),
		c.clock,
		c.cfg.ReportDir,
		c.cfg.ReportCron,
		c.logger,
	)
}

// CreateContactCacheWarmupJob returns nil without a contact cache.
func (c *CompositionRoot) CreateContactCacheWarmupJob() *jobs.ContactCacheWarmupJob {
	if c.contactCache == nil {
		return nil
	}
	return jobs.NewContactCacheWarmupJob(c.CreateListContactsQueryHandler(), c.cfg.WarmupCron, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateDailyReportJob(), c.CreateContactCacheWarmupJob())
}

func (c *CompositionRoot) today() string {
	return kernel.DatePrefix(c.clock.Now())
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) contactUoWFactory() commands.ContactUoWFactory {
	return FuncContactUoWFactory(func() commands.ContactUoW {
		return c.uowFactory.Create()
	})
}

type FuncContactUoWFactory func() commands.ContactUoW

func (f FuncContactUoWFactory) Create() commands.ContactUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
