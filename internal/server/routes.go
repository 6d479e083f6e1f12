package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/voidinbox/web"
)

const (
	healthPath  = "/health"
	metricsPath = "/metrics"
	staticPath  = "/static"
)

// RegisterRoutes sets up the routes owned by the server itself. Feature
// routes are mounted by modules in InitModules.
func (s *Server) RegisterRoutes() {
	s.E.GET(healthPath, func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	if s.Metrics != nil {
		s.E.GET(metricsPath, s.Metrics.Handler())
	}

	s.E.StaticFS(staticPath, web.Static())
}
