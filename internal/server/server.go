package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/voidinbox/internal/config"
	"github.com/nfrund/voidinbox/internal/handlers"
	"github.com/nfrund/voidinbox/internal/metrics"
	"github.com/nfrund/voidinbox/internal/middleware"
	"github.com/nfrund/voidinbox/internal/module"
	"github.com/nfrund/voidinbox/internal/registry"
	"github.com/nfrund/voidinbox/internal/rendering"
)

// Dependencies holds everything the server needs to be constructed.
type Dependencies struct {
	Config   config.Provider
	Renderer *rendering.ComponentRenderer
	Metrics  *metrics.Metrics
	// Echo is optional; tests may pass their own instance.
	Echo *echo.Echo
}

// Server holds the HTTP server and the booted modules.
type Server struct {
	E       *echo.Echo
	Cfg     config.Provider
	Metrics *metrics.Metrics
	modules []module.Module
}

// New creates a Server with the global middleware chain installed.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if deps.Renderer == nil {
		return nil, errors.New("server: renderer is required")
	}

	e := deps.Echo
	if e == nil {
		e = echo.New()
	}
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = deps.Renderer
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())
	if deps.Metrics != nil {
		mw, err := deps.Metrics.Middleware(metricsPath)
		if err != nil {
			return nil, err
		}
		e.Use(mw)
	}

	return &Server{
		E:       e,
		Cfg:     deps.Config,
		Metrics: deps.Metrics,
	}, nil
}

// InitModules registers every module, then boots each on the root group.
func (s *Server) InitModules(ctx context.Context, modules []module.Module, reg *registry.Registry) error {
	for _, m := range modules {
		if err := m.Register(reg); err != nil {
			return fmt.Errorf("failed to register module %q: %w", m.Name(), err)
		}
	}
	root := s.E.Group("")
	for _, m := range modules {
		if err := m.Boot(ctx, root, reg); err != nil {
			return fmt.Errorf("failed to boot module %q: %w", m.Name(), err)
		}
		slog.Info("Module booted", "module", m.Name())
	}
	s.modules = modules
	return nil
}

// Shutdown stops the modules, then the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if err := m.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("module %q: %w", m.Name(), err))
		}
	}
	if err := s.E.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
