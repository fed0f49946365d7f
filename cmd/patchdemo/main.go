package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/patchbind/core/config"
	"github.com/dmitrymomot/patchbind/core/logger"
	"github.com/dmitrymomot/patchbind/internal/app"
)

func main() {
	if err := run(); err != nil {
		slog.Error("patchdemo stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg app.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Run(ctx)
}
