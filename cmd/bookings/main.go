package main

import (
	bookingshandler "trainbook/internal/bookings/handler"
	"trainbook/internal/bookings/publisher"
	bookingsrepository "trainbook/internal/bookings/repository"
	bookingsservice "trainbook/internal/bookings/service"
	"trainbook/internal/bookings/validator"
	cataloghandler "trainbook/internal/catalog/handler"
	catalogrepository "trainbook/internal/catalog/repository"
	catalogservice "trainbook/internal/catalog/service"
	"trainbook/pkg/app"
	"trainbook/pkg/config"
	"trainbook/pkg/contracts"
	"trainbook/pkg/kafka"
	kafka_middleware "trainbook/pkg/kafka/middleware"
	"trainbook/pkg/workbook"
)

const ServiceName = "bookings"

type stores struct {
	schedule     bookingsrepository.ScheduleStore
	participants bookingsrepository.ParticipantLookup
	locker       bookingsrepository.SessionLocker
	options      catalogrepository.OptionRepository
}

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Bookings service", "store", cfg.StoreBackend)
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(initHandlers(cfg, serverApp)...)
	serverApp.Run()
}

func initHandlers(cfg *config.Config, serverApp *app.Application) []contracts.Handler {
	s := initStores(cfg)
	sessionPublisher := initPublisher(cfg)

	bookingService := bookingsservice.NewBookingService(
		s.schedule,
		s.participants,
		s.locker,
		sessionPublisher,
		validator.NewBookingValidator(cfg.Log),
		cfg.Log,
	)
	serverApp.OnShutdown(bookingService.Drain)
	catalogService := catalogservice.NewCatalogService(s.options, cfg.Log)

	cfg.Log.Info("Booking service initialized", "store", cfg.StoreBackend)
	return []contracts.Handler{
		bookingshandler.NewBookingHandler(bookingService, cfg.Log),
		cataloghandler.NewCatalogHandler(catalogService, cfg.Log),
	}
}

func initStores(cfg *config.Config) stores {
	if cfg.UsesMongo() {
		cfg.SetMongo()
		return stores{
			schedule:     bookingsrepository.NewMongoSessionRepository(cfg),
			participants: bookingsrepository.NewMongoParticipantRepository(cfg),
			locker: bookingsrepository.NewChainLocker(
				bookingsrepository.NewMutexLocker(),
				bookingsrepository.NewMongoLocker(bookingsrepository.NewSessionLockRepository(cfg), cfg.LockTTL, cfg.Log),
			),
			options: catalogrepository.NewMongoOptionRepository(cfg),
		}
	}

	cfg.Client.SetWorkbook(cfg.Log, cfg.WorkbookPath, workbook.CalendarSheets())
	wb := cfg.Client.Workbook
	return stores{
		schedule:     bookingsrepository.NewWorkbookSessionRepository(wb, cfg.Log),
		participants: bookingsrepository.NewWorkbookParticipantRepository(wb),
		locker:       bookingsrepository.NewMutexLocker(),
		options:      catalogrepository.NewWorkbookOptionRepository(wb),
	}
}

func initPublisher(cfg *config.Config) publisher.SessionPublisher {
	if !cfg.Kafka.Enabled() {
		cfg.Log.Info("Kafka brokers not configured, session events disabled")
		return publisher.NewNopSessionPublisher()
	}

	producer, err := kafka.NewProducer(cfg.Kafka, cfg.Log, cfg.Kafka.SessionsTopic, cfg.Kafka.SessionsDLQTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	if cfg.Kafka.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
	}
	cfg.Client.SetProducer(producer)

	cfg.Log.Info("Publishing session events", "topic", cfg.Kafka.SessionsTopic)
	return publisher.NewKafkaSessionPublisher(producer)
}
