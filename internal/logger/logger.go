package logger

import (
	"context"

	"go-apre/internal/config"
	"go-apre/internal/database"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the application logger and, when LOG_TO_DB is set, mirrors
// entries into the logs collection through the async DB writer.
func NewLogger(lc fx.Lifecycle, cfg *config.Config, mongodb *database.MongodbDB) (*zap.Logger, error) {
	var sink EntrySink
	if cfg.LogToDB {
		writer := NewDBLogWriter(mongodb.DB.Collection(database.LogsCollection), cfg.AppId)
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				writer.Close()
				return nil
			},
		})
		sink = writer
	}

	log, err := Build(cfg, sink)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = log.Sync()
			return nil
		},
	})
	return log, nil
}

// Build creates a zap logger from config. A nil sink skips DB mirroring.
func Build(cfg *config.Config, sink EntrySink) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.IsProduction() {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	// Caller must stay enabled so the DB core can record the function name.
	zapConfig.EncoderConfig.FunctionKey = "func"

	baseLogger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	core := baseLogger.Core()
	if cfg.LogFile != "" {
		core = zapcore.NewTee(core, fileCore(cfg.LogFile, zapConfig.Level))
	}
	if sink != nil {
		core = NewDBCore(core, sink)
	}

	return zap.New(core, zap.AddCaller()).With(zap.String("app", cfg.AppId)), nil
}

func fileCore(path string, level zap.AtomicLevel) zapcore.Core {
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    50, // MB
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.FunctionKey = "func"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(rotator), level)
}
