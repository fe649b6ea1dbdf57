package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/itsm-portal/internal/api/http"
	"github.com/spec-kit/itsm-portal/internal/api/http/handlers"
	"github.com/spec-kit/itsm-portal/internal/config"
	"github.com/spec-kit/itsm-portal/internal/events"
	"github.com/spec-kit/itsm-portal/internal/importer"
	"github.com/spec-kit/itsm-portal/internal/observability"
	"github.com/spec-kit/itsm-portal/internal/persistence"
	"github.com/spec-kit/itsm-portal/internal/sequence"
	"github.com/spec-kit/itsm-portal/internal/service"
	"github.com/spec-kit/itsm-portal/internal/store"
	"github.com/spec-kit/itsm-portal/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	var redis *persistence.Redis
	if cfg.Redis.Enabled {
		redis = persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()
	}

	var sequencer sequence.Sequencer
	if cfg.Import.SequenceBackend == config.SequenceBackendRedis && redis != nil {
		sequencer = sequence.NewRedisSequencer(redis.Client, cfg.Import.SequenceKeyPrefix)
	} else {
		sequencer = sequence.NewMemorySequencer()
	}

	tickets := store.NewMemoryStore(store.SeedTickets())
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketStore: tickets,
		Dispatcher:  dispatcher,
	})
	importService := service.NewImportService(service.ImportDependencies{
		Mapping:     importer.DefaultColumnMapping().WithOverrides(cfg.Import.HeaderOverrides),
		Synthesizer: service.NewSynthesizer(sequencer),
		TicketStore: tickets,
		Dispatcher:  dispatcher,
		Metrics:     metrics,
		Logger:      logger,
	})
	catalogService := service.NewCatalogService()
	trackingService := service.NewTrackingService(tickets)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis),
		Catalog:  handlers.NewCatalogHandler(catalogService),
		Tickets:  handlers.NewTicketsHandler(ticketService),
		Imports:  handlers.NewImportsHandler(importService),
		Tracking: handlers.NewTrackingHandler(trackingService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
