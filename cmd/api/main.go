package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	advisorHttp "smebig-warroom/internal/advisor/adapters/http/fiber"
	advisorRepoPg "smebig-warroom/internal/advisor/adapters/postgres"
	advisorUsecase "smebig-warroom/internal/advisor/core/usecase"

	analyticsCache "smebig-warroom/internal/analytics/adapters/cache"
	analyticsHttp "smebig-warroom/internal/analytics/adapters/http/fiber"
	analyticsRepoPg "smebig-warroom/internal/analytics/adapters/postgres"
	"smebig-warroom/internal/analytics/core/engine"
	analyticsUsecase "smebig-warroom/internal/analytics/core/usecase"

	txAmqp "smebig-warroom/internal/transactions/adapters/amqp"
	txHttp "smebig-warroom/internal/transactions/adapters/http/fiber"
	txRepoPg "smebig-warroom/internal/transactions/adapters/postgres"
	txDomain "smebig-warroom/internal/transactions/core/domain"
	txPorts "smebig-warroom/internal/transactions/core/ports"
	txUsecase "smebig-warroom/internal/transactions/core/usecase"

	"smebig-warroom/internal/platform/config"
	"smebig-warroom/internal/platform/llm"
	"smebig-warroom/internal/platform/llm/gemini"
	"smebig-warroom/internal/platform/logging"
	"smebig-warroom/internal/platform/messaging"
	"smebig-warroom/internal/platform/postgres"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "smebig-warroom/docs"
)

// @title SMEbig War Room API
// @version 1.0
// @description Transaction import, dashboard analytics and advisor task board for SME e-commerce clients.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	logging.Setup(cfg.LogLevel)
	logger := logging.Component("main")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// DB connection
	db, err := postgres.Open(ctx, cfg.PostgresDSN, postgres.PoolOptions{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to postgres")
	}
	defer db.Close()

	if cfg.MigrateOnStart {
		if err := postgres.RunMigrations(db); err != nil {
			logger.WithError(err).Fatal("failed to run migrations")
		}
		logger.Info("migrations applied")
	}

	// Narrative model (optional)
	var gen llm.TextGenerator
	if cfg.LLMEnabled() {
		client, err := gemini.New(ctx, gemini.Options{APIKey: cfg.GoogleAPIKey, Model: cfg.LLMModel})
		if err != nil {
			logger.WithError(err).Fatal("failed to create gemini client")
		}
		gen = client
	} else {
		logger.Warn("GOOGLE_API_KEY is not set, AI features are disabled")
	}

	// Analytics
	cache, err := analyticsCache.NewReportCache(cfg.DashboardCacheSize, cfg.DashboardCacheTTL)
	if err != nil {
		logger.WithError(err).Fatal("failed to create dashboard cache")
	}
	loc, err := cfg.Location()
	if err != nil {
		logger.WithError(err).Fatal("invalid timezone")
	}
	params := engine.DefaultParams()
	params.RFMPointLimit = cfg.RFMPointLimit
	params.Location = loc

	reader := analyticsRepoPg.NewTransactionReader(analyticsRepoPg.NewSQLDB(db))
	dashboardUC := analyticsUsecase.NewGetDashboardUseCase(reader, cache, params)

	// Messaging (optional); without a broker the cache is invalidated in process
	var notifier txPorts.ImportNotifierPort = localInvalidator{dashboard: dashboardUC}
	if cfg.AMQPEnabled() {
		broker, err := messaging.Dial(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			logger.WithError(err).Fatal("failed to connect to rabbitmq")
		}
		defer broker.Close()

		if err := broker.BindQueue(cfg.AMQPQueue, txAmqp.RoutingKeyImported); err != nil {
			logger.WithError(err).Fatal("failed to bind queue")
		}
		notifier = txAmqp.NewImportNotifier(broker)

		go func() {
			handler := txAmqp.ImportedHandler(func(ctx context.Context, evt txDomain.ImportedEvent) error {
				dashboardUC.Invalidate(evt.ClientName)
				return nil
			})
			if err := broker.Consume(ctx, cfg.AMQPQueue, handler); err != nil && !errors.Is(err, context.Canceled) {
				logger.WithError(err).Error("import consumer stopped")
			}
		}()
	}

	// Transactions
	writer := txRepoPg.NewTransactionRepository(txRepoPg.NewSQLDB(db))
	importUC := txUsecase.NewImportTransactionsUseCase(writer, notifier, txUsecase.ImportOptions{
		BatchSize: cfg.ImportBatchSize,
		Location:  loc,
	})
	mappingUC := txUsecase.NewSuggestMappingUseCase(gen)

	// Advisor
	taskRepository := advisorRepoPg.NewTaskRepository(advisorRepoPg.NewSQLDB(db))
	diagnoseUC := advisorUsecase.NewDiagnoseUseCase(dashboardUC, gen)
	taskBoardUC := advisorUsecase.NewTaskBoardUseCase(taskRepository, gen)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		BodyLimit: 64 * 1024 * 1024,
	})
	app.Use(logging.RequestLogger())

	txHandler := txHttp.NewTransactionHandler(importUC, mappingUC)
	app.Post("/transactions/import", txHandler.ImportCSV)
	app.Post("/transactions/bulk", txHandler.BulkCreateTransactions)
	app.Post("/transactions/map-columns", txHandler.MapColumns)

	dashboardHandler := analyticsHttp.NewDashboardHandler(dashboardUC)
	app.Get("/dashboard", dashboardHandler.GetDashboard)
	app.Get("/dashboard/rfm", dashboardHandler.GetRFM)

	advisorHandler := advisorHttp.NewAdvisorHandler(diagnoseUC, taskBoardUC)
	app.Post("/diagnose", advisorHandler.Diagnose)
	app.Get("/tasks", advisorHandler.ListTasks)
	app.Post("/tasks", advisorHandler.CreateTask)
	app.Post("/tasks/generate", advisorHandler.GenerateTasks)
	app.Patch("/tasks/:id", advisorHandler.UpdateTask)
	app.Delete("/tasks/:id", advisorHandler.DeleteTask)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.WithError(err).Error("fiber stopped")
		}
	}()

	logger.WithField("port", cfg.Port).Info("server started")

	<-ctx.Done()

	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.WithError(err).Error("fiber shutdown error")
	}

	logger.Info("server exiting")
}

type dashboardInvalidator interface {
	Invalidate(clientName string)
}

// localInvalidator drops cached dashboards right after an import when no
// broker is configured.
type localInvalidator struct {
	dashboard dashboardInvalidator
}

func (l localInvalidator) NotifyImported(_ context.Context, evt txDomain.ImportedEvent) error {
	l.dashboard.Invalidate(evt.ClientName)
	return nil
}
