// Package web parses web service flags and launches the landing page server.
package web

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/developerdao/schoolofcode/internal/platform/cmd"
	"github.com/developerdao/schoolofcode/internal/services/web"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr string        `env:"SCHOOL_OF_CODE_WEB_HTTP_ADDR" envDefault:"localhost:3000"`
	LogLevel zapcore.Level `env:"SCHOOL_OF_CODE_LOG_LEVEL" envDefault:"info"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.Var(&cfg.LogLevel, "log-level", "Log level (debug, info, warn, error)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewLogger builds the production JSON logger at level.
func NewLogger(level zapcore.Level) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.With(zap.String("service", entrypoint.ServiceWeb)), nil
}

// Run starts the web server and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) error {
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr: cfg.HTTPAddr,
			Logger:   logger,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
