package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/nfrund/voidinbox/internal/app"
	"github.com/nfrund/voidinbox/internal/config"
	"github.com/nfrund/voidinbox/internal/logging"
	"github.com/nfrund/voidinbox/internal/metrics"
	"github.com/nfrund/voidinbox/internal/registry"
	"github.com/nfrund/voidinbox/internal/rendering"
	"github.com/nfrund/voidinbox/internal/replies"
	"github.com/nfrund/voidinbox/internal/server"
	"github.com/spf13/afero"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	pool, err := replies.Resolve(afero.NewOsFs(), cfg.GetReplyPoolFile())
	if err != nil {
		slog.Error("Failed to load reply pool", "file", cfg.GetReplyPoolFile(), "error", err)
		os.Exit(1)
	}

	renderer := rendering.New()
	m := metrics.New()

	s, err := server.New(server.Dependencies{
		Config:   cfg,
		Renderer: renderer,
		Metrics:  m,
	})
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	modules := app.NewModules(app.Dependencies{
		Renderer: renderer,
		Pool:     pool,
		Metrics:  m,
	})
	if err := s.InitModules(context.Background(), modules, registry.New(cfg)); err != nil {
		slog.Error("Failed to initialize modules", "error", err)
		os.Exit(1)
	}
	s.RegisterRoutes()

	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
