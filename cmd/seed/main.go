package main

import (
	"context"
	"os"

	"go-apre/internal/config"
	"go-apre/internal/database"
	"go-apre/internal/logger"
	"go-apre/internal/seed"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Data path, assuming the seeder runs from the repository root.
const defaultDataDir = "cmd/seed/data"

// Seed replaces the report collections with the fixture documents and
// shuts the app down when done.
func Seed(lc fx.Lifecycle, seeder *seed.Seeder, log *zap.Logger, shutdowner fx.Shutdowner) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				exitCode := 0
				defer func() {
					if err := shutdowner.Shutdown(fx.ExitCode(exitCode)); err != nil {
						log.Error("Failed to shutdown", zap.Error(err))
					}
				}()

				dir := defaultDataDir
				if v, ok := os.LookupEnv("SEED_DATA_DIR"); ok && v != "" {
					dir = v
				}

				log.Info("Starting database seeding", zap.String("dir", dir))
				fixtures, err := seed.Load(dir)
				if err != nil {
					log.Error("Failed to read fixtures", zap.Error(err))
					exitCode = 1
					return
				}

				if err := seeder.Run(context.Background(), fixtures); err != nil {
					log.Error("Seeding failed", zap.Error(err))
					exitCode = 1
					return
				}
				log.Info("Seeding completed",
					zap.Int("feedback", len(fixtures.Feedback)),
					zap.Int("sales", len(fixtures.Sales)),
				)
			}()
			return nil
		},
	})
}

func main() {
	fx.New(
		fx.Provide(
			config.LoadConfig,
			database.NewDatabase,
			logger.NewLogger,
			seed.NewSeeder,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(Seed),
	).Run()
}
