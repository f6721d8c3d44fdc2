package main

import (
	"go-apre/internal/catalog"
	"go-apre/internal/config"
	"go-apre/internal/database"
	"go-apre/internal/features/feedback"
	"go-apre/internal/features/sales"
	"go-apre/internal/features/system"
	"go-apre/internal/logger"
	"go-apre/internal/metrics"
	"go-apre/internal/server"

	_ "go-apre/docs" // Import swagger docs

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// @title           APRE Reports API
// @version         1.0
// @description     Report query endpoints for customer feedback and sales.

// @host            localhost:8080
// @BasePath        /
func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Database
			database.NewDatabase,

			// Initialize Logger
			logger.NewLogger,

			// Metrics
			metrics.NewRegistry,
			metrics.New,

			// Report option catalog
			catalog.NewCatalog,

			// Initialize Fiber Server
			server.NewFiberServer,

			// Initialize Repository
			feedback.NewFeedbackRepository,
			sales.NewSalesRepository,

			// Initialize Service
			feedback.NewFeedbackService,
			sales.NewSalesService,

			// Initialize Controller
			feedback.NewFeedbackController,
			sales.NewSalesController,
			system.NewOptionsController,

			// Initialize API Routes
			server.AsRoute(feedback.NewFeedbackApi),
			server.AsRoute(sales.NewSalesApi),
			server.AsRoute(system.NewOptionsApi),
			server.AsRoute(system.NewHealthApi),
			server.AsRoute(system.NewSwaggerApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			// Register Routes & Start
			server.RegisterAllRoutesWithAnnotation,
			server.StartServer,
		),
	)

	app.Run()
}
