// Package main starts the School of Code landing page service.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/developerdao/schoolofcode/internal/cmd/web"
	"github.com/developerdao/schoolofcode/internal/platform/config"
	"go.uber.org/zap"
)

func main() {
	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	logger, err := webcmd.NewLogger(cfg.LogLevel)
	if err != nil {
		config.Exitf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := webcmd.Run(ctx, cfg, logger); err != nil {
		logger.Error("failed to serve", zap.Error(err))
		stop()
		_ = logger.Sync()
		os.Exit(1)
	}
}
