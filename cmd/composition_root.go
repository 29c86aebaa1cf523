package cmd

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	inkafka "fulfillment/internal/adapters/in/kafka"
	"fulfillment/internal/adapters/out/dcclient"
	outkafka "fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/kafka/noop"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/redis"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cache      *redis.Cache
	dcClient   ports.DistributionCenterClient
	publisher  ports.EventPublisher
	logger     *slog.Logger

	kafkaPublisher *outkafka.Publisher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}

	var dcClient ports.DistributionCenterClient = dcclient.NewClient(config.DCServiceURL)
	if config.RedisAddr != "" {
		root.cache = redis.NewCache(config.RedisAddr)
		dcClient = dcclient.NewCachedClient(dcClient, root.cache, logger)
	}
	root.dcClient = dcClient

	if config.KafkaHost != "" {
		root.kafkaPublisher = outkafka.NewPublisher(
			[]string{config.KafkaHost}, config.KafkaOrderTopic, logger)
		root.publisher = root.kafkaPublisher
	} else {
		root.publisher = noop.Publisher{}
	}

	return root
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(), ulidIDGenerator{}, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateProcessOrderCommandHandler() commands.ProcessOrderCommandHandler {
	return commands.NewProcessOrderCommandHandler(
		c.orderUoWFactory(), c.dcClient, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateReprocessOrderCommandHandler() commands.ReprocessOrderCommandHandler {
	return commands.NewReprocessOrderCommandHandler(
		c.orderUoWFactory(), c.CreateProcessOrderCommandHandler())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnfinishedOrdersQueryHandler() queries.GetUnfinishedOrdersQueryHandler {
	return queries.NewGetUnfinishedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(staleThreshold time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(
		c.orderUoWFactory(), c.CreateProcessOrderCommandHandler(), staleThreshold, c.logger)
}

// CreateKafkaConsumer wires the order.created consumer. Returns nil when no
// broker is configured; the sweep job then drives processing on its own.
func (c *CompositionRoot) CreateKafkaConsumer(config Config) *inkafka.Consumer {
	if config.KafkaHost == "" {
		return nil
	}

	return inkafka.NewConsumer(
		[]string{config.KafkaHost},
		config.KafkaOrderTopic,
		config.KafkaConsumerGroup,
		c.CreateProcessOrderCommandHandler(),
		c.logger,
	)
}

// Close releases broker and cache connections held by the root.
func (c *CompositionRoot) Close() {
	if c.kafkaPublisher != nil {
		if err := c.kafkaPublisher.Close(); err != nil {
			c.logger.Warn("Failed to close kafka publisher", "error", err)
		}
	}
	if c.cache != nil {
		if err := c.cache.Close(); err != nil {
			c.logger.Warn("Failed to close redis cache", "error", err)
		}
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type ulidIDGenerator struct{}

func (ulidIDGenerator) NewOrderID() kernel.OrderID {
	return kernel.NewOrderID()
}
