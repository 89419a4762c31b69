package main

import (
	"context"

	availabilityhandler "campusbook/internal/availability/handler"
	availabilityservice "campusbook/internal/availability/service"
	cataloghandler "campusbook/internal/catalog/handler"
	catalogrepository "campusbook/internal/catalog/repository"
	catalogservice "campusbook/internal/catalog/service"
	catalogvalidator "campusbook/internal/catalog/validator"
	eventhandler "campusbook/internal/events/handler"
	"campusbook/internal/events/proofstore"
	eventrepository "campusbook/internal/events/repository"
	eventservice "campusbook/internal/events/service"
	eventvalidator "campusbook/internal/events/validator"
	"campusbook/pkg/app"
	"campusbook/pkg/config"
	"campusbook/pkg/kafka"
	kafkaconfig "campusbook/pkg/kafka/config"
)

const ServiceName = "campusbook"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting campusbook service")

	catalogSvc, eventSvc, availabilitySvc, producer := initServices(cfg)
	if producer != nil {
		defer producer.Close()
	}

	if cfg.SeedCatalog {
		seedCatalog(cfg, catalogSvc)
	}

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg,
		cataloghandler.NewCatalogHandler(catalogSvc, cfg.Log),
		eventhandler.NewEventHandler(eventSvc, cfg, cfg.Log),
		availabilityhandler.NewAvailabilityHandler(availabilitySvc, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config) (
	catalogservice.CatalogService,
	eventservice.EventService,
	availabilityservice.AvailabilityService,
	*kafka.Producer,
) {
	facilityRepo := catalogrepository.NewMongoFacilityRepository(cfg)
	mediaRepo := catalogrepository.NewMongoMediaRepository(cfg)
	catalogSvc := catalogservice.NewCatalogService(
		facilityRepo,
		mediaRepo,
		catalogvalidator.NewCatalogValidator(cfg.Log),
		cfg,
	)

	proofStore, err := proofstore.NewDiskStore(cfg.ProofStorageDir, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize proof storage", "error", err)
	}

	producer := initProducer(cfg)
	var publisher eventservice.Publisher
	if producer != nil {
		publisher = producer
	}

	eventRepo := eventrepository.NewMongoEventRepository(cfg)
	lockRepo := eventrepository.NewMongoResourceLockRepository(cfg)
	eventSvc := eventservice.NewEventService(
		eventRepo,
		lockRepo,
		facilityRepo,
		eventvalidator.NewEventValidator(cfg.Log),
		proofStore,
		publisher,
		cfg,
	)

	availabilitySvc := availabilityservice.NewAvailabilityService(
		eventRepo,
		facilityRepo,
		mediaRepo,
		cfg,
	)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)
	return catalogSvc, eventSvc, availabilitySvc, producer
}

func initProducer(cfg *config.Config) *kafka.Producer {
	kafkaCfg := kafkaconfig.Load()
	if !kafkaCfg.Enabled() {
		cfg.Log.Info("Kafka publishing disabled, no brokers configured")
		return nil
	}

	producer, err := kafka.NewProducer(kafkaCfg)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize Kafka producer", "error", err)
	}

	cfg.Log.Info("Kafka producer initialized", "topic", kafkaCfg.Topic)
	return producer
}

func seedCatalog(cfg *config.Config, catalogSvc catalogservice.CatalogService) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
	defer cancel()

	if err := catalogSvc.EnsureSeed(ctx); err != nil {
		cfg.Log.Fatal("Failed to seed catalog", "error", err)
	}
}
