package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vendkit/vendkit/internal/admin"
	"github.com/vendkit/vendkit/internal/catalog"
	"github.com/vendkit/vendkit/internal/config"
	"github.com/vendkit/vendkit/internal/display"
	"github.com/vendkit/vendkit/internal/machine"
	"github.com/vendkit/vendkit/internal/session"
	"github.com/vendkit/vendkit/pkg/logger"
	"github.com/vendkit/vendkit/pkg/prompt"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithAttr(slog.String("service", "vendkit")),
	)

	store := catalog.Default()
	if cfg.CatalogPath != "" {
		store, err = catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return err
		}
		log.Info("catalog loaded", slog.String("path", cfg.CatalogPath))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console := display.New(os.Stdout)

	m := machine.New(
		store,
		admin.NewRegistry(cfg.DefaultAdminID),
		prompt.New(os.Stdin, console.Writer()),
		console,
		log,
		session.Config{
			InputTimeout:      cfg.InputTimeout,
			AdminInputTimeout: cfg.AdminInputTimeout,
		},
	)

	if err := m.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
