package cmd

import (
	"log/slog"

	httpin "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/adapters/out/postgres/userrepo"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/lifecycle"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
	"warehouse/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	engine     *lifecycle.Engine
	publisher  ports.EventPublisher
	ackStore   ports.NotificationAckStore
	logger     *slog.Logger
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	ackStore ports.NotificationAckStore,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		engine:     lifecycle.Default(),
		publisher:  publisher,
		ackStore:   ackStore,
		logger:     logger,
	}
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateChangeProductStatusCommandHandler() commands.ChangeProductStatusCommandHandler {
	return commands.NewChangeProductStatusCommandHandler(
		c.productUoWFactory(),
		services.NewStatusApplier(c.engine),
		c.logger,
	)
}

func (c *CompositionRoot) CreateMarkNotificationsReadCommandHandler() commands.MarkNotificationsReadCommandHandler {
	return commands.NewMarkNotificationsReadCommandHandler(c.ackStore)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNextStatesQueryHandler() queries.GetNextStatesQueryHandler {
	return queries.NewGetNextStatesQueryHandler(c.gormDB, c.engine)
}

func (c *CompositionRoot) CreateGetProductHistoryQueryHandler() queries.GetProductHistoryQueryHandler {
	return queries.NewGetProductHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.gormDB, c.ackStore)
}

func (c *CompositionRoot) CreateUserDirectory() ports.UserDirectory {
	return userrepo.NewGormUserDirectory(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRelayOutboxCommandHandler(), c.cfg.OutboxBatchSize, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateProduct:         c.CreateCreateProductCommandHandler(),
		ChangeProductStatus:   c.CreateChangeProductStatusCommandHandler(),
		MarkNotificationsRead: c.CreateMarkNotificationsReadCommandHandler(),
		GetProduct:            c.CreateGetProductQueryHandler(),
		GetNextStates:         c.CreateGetNextStatesQueryHandler(),
		GetProductHistory:     c.CreateGetProductHistoryQueryHandler(),
		GetNotifications:      c.CreateGetNotificationsQueryHandler(),
	}, c.logger)
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
