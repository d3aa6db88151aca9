package cmd

import (
	"log/slog"
	"time"

	"logistics/internal/adapters/out/kafka"
	"logistics/internal/adapters/out/manifest"
	"logistics/internal/adapters/out/postgres"
	redisadapter "logistics/internal/adapters/out/redis"
	"logistics/internal/core/application/events"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	routeMaps  ports.RouteMapGenerator
	planCache  queries.PlanCache
	defaults   commands.SelectionDefaults
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	var publisher ports.EventPublisher
	if config.KafkaHost != "" {
		publisher = kafka.NewPublisher(config.KafkaHost, config.KafkaSelectionTopic, logger)
	} else {
		publisher = kafka.NewLogPublisher(logger)
	}

	var planCache queries.PlanCache
	if config.RedisHost != "" {
		client := goredis.NewClient(&goredis.Options{Addr: config.RedisHost})
		planCache = redisadapter.NewPlanCache(client, redisadapter.DefaultPlanTTL)
	}

	defaults := commands.NewSelectionDefaults()
	if config.DefaultCurrency != "" {
		defaults.Currency = config.DefaultCurrency
	}
	if config.SystemActor != "" {
		defaults.Actor = config.SystemActor
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		routeMaps: manifest.NewGenerator(
			config.ManifestOutputDir,
			config.ManifestPDFRenderer,
			config.ManifestBaseURL,
			logger,
		),
		planCache: planCache,
		defaults:  defaults,
		logger:    logger,
	}
}

func (c *CompositionRoot) CreateSelectRouteCommandHandler() commands.SelectRouteCommandHandler {
	var f commands.SelectionUoWFactory = FuncSelectionUoWFactory(func() commands.SelectionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSelectRouteCommandHandler(
		f,
		events.NewSequencer(c.publisher, c.logger),
		c.routeMaps,
		c.defaults,
		c.logger,
	)
}

func (c *CompositionRoot) CreateReleaseExpiredHoldsCommandHandler() commands.ReleaseExpiredHoldsCommandHandler {
	var f commands.JanitorUoWFactory = FuncJanitorUoWFactory(func() commands.JanitorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseExpiredHoldsCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetRoutePlanQueryHandler() queries.GetRoutePlanQueryHandler {
	return queries.NewGetRoutePlanQueryHandler(c.gormDB, c.planCache, c.logger)
}

func (c *CompositionRoot) CreateGetHubCapacityQueryHandler() queries.GetHubCapacityQueryHandler {
	return queries.NewGetHubCapacityQueryHandler(c.gormDB)
}

// ClosePublisher releases the Kafka writer if one was configured.
func (c *CompositionRoot) ClosePublisher(timeout time.Duration) {
	if closer, ok := c.publisher.(interface{ Close() error }); ok {
		done := make(chan struct{})
		go func() {
			_ = closer.Close()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(timeout):
			c.logger.Warn("publisher close timed out")
		}
	}
}

type FuncSelectionUoWFactory func() commands.SelectionUoW

func (f FuncSelectionUoWFactory) Create() commands.SelectionUoW {
	return f()
}

type FuncJanitorUoWFactory func() commands.JanitorUoW

func (f FuncJanitorUoWFactory) Create() commands.JanitorUoW {
	return f()
}
