package server

import (
	"context"
	"fmt"

	"go-apre/internal/common/api"
	"go-apre/internal/common/apierror"
	"go-apre/internal/config"
	"go-apre/internal/metrics"
	"go-apre/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewFiberServer creates the Fiber app with the shared middleware stack.
func NewFiberServer(cfg *config.Config, log *zap.Logger, m *metrics.Metrics) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.AppId,
		DisableStartupMessage: true,
		ErrorHandler: apierror.Handler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(log))
	app.Use(middleware.Metrics(m))
	app.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	return app
}

// RegisterAllRoutes calls Setup on every route and then installs the
// catch-all that answers unmatched paths with the structured 404 body.
func RegisterAllRoutes(app *fiber.App, routes []api.Route, log *zap.Logger) {
	for _, route := range routes {
		log.Debug("registering routes", zap.String("route", fmt.Sprintf("%T", route)))
		route.Setup(app)
	}
	app.Use(apierror.NotFoundHandler)
	log.Info("all routes registered", zap.Int("count", len(routes)))
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// AsRoute tags a constructor so Fx adds it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config, log *zap.Logger, shutdowner fx.Shutdowner) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				addr := fmt.Sprintf(":%s", cfg.Port)
				log.Info("listening", zap.String("addr", addr))
				if err := app.Listen(addr); err != nil {
					log.Error("server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
