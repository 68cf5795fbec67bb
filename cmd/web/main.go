// Package main starts the browser-facing job portal.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/louisbranch/jobportal/internal/cmd/web"
	"github.com/louisbranch/jobportal/internal/platform/config"
	"github.com/louisbranch/jobportal/internal/platform/logging"
	"go.uber.org/zap"
)

func main() {
	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	logger, err := logging.New(logging.Options{
		Service: "web",
		Level:   cfg.LogLevel,
		Format:  logging.Format(cfg.LogFormat),
	})
	if err != nil {
		config.Exitf("build logger: %v", err)
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
