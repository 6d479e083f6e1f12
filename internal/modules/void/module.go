package void

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/voidinbox/internal/module"
	"github.com/nfrund/voidinbox/internal/registry"
	"github.com/nfrund/voidinbox/internal/rendering"
	"github.com/nfrund/voidinbox/internal/replies"
	"github.com/nfrund/voidinbox/internal/responder"
	"github.com/nfrund/voidinbox/internal/surface"
)

// KeyResponder is the registry key for the Void's Responder.
var KeyResponder = registry.Key[*responder.Responder]("void.responder")

// Route paths, relative to the group the module is booted on.
const (
	PagePath   = "/"
	SocketPath = "/ws"
	SendPath   = "/api/send"
)

// ResponseObserver is told about every responder decision.
type ResponseObserver interface {
	ObserveResponse(replied bool)
}

// Dependencies holds the services the VoidModule requires.
type Dependencies struct {
	Renderer rendering.Renderer
	Pool     *replies.Pool
	Observer ResponseObserver
	// Options are passed to responder.New, e.g. a seeded source in tests.
	Options []responder.Option
}

// VoidModule serves the Void Inbox page and its surface sessions.
type VoidModule struct {
	module.BaseModule
	deps    Dependencies
	handler *Handler
}

// New creates the module.
func New(deps Dependencies) *VoidModule {
	return &VoidModule{deps: deps}
}

// Name returns the module name.
func (m *VoidModule) Name() string {
	return "void"
}

// Register builds the Responder from the pool and the configured probability.
func (m *VoidModule) Register(reg *registry.Registry) error {
	pool := m.deps.Pool
	if pool == nil {
		pool = replies.Default()
	}
	threshold := reg.Config().GetReplyProbability()
	registry.Set(reg, KeyResponder, responder.New(pool, threshold, m.deps.Options...))

	slog.Info("Registered Void responder", "replies", pool.Len(), "probability", threshold)
	return nil
}

// Boot mounts the page, the WebSocket surface and the JSON endpoint.
func (m *VoidModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	r, ok := registry.Get(reg, KeyResponder)
	if !ok {
		return fmt.Errorf("void responder not found in registry")
	}

	var resp surface.Responder = r
	if m.deps.Observer != nil {
		resp = observedResponder{next: r, observer: m.deps.Observer}
	}

	cfg := reg.Config()
	m.handler = NewHandler(resp, m.deps.Renderer, HandlerOptions{
		Timing: surface.Timing{
			RevealInterval: cfg.GetRevealInterval(),
			Dwell:          cfg.GetDwell(),
		},
		BaseURL:    cfg.GetAppBaseURL(),
		SourceURL:  cfg.GetSourceURL(),
		SocketPath: SocketPath,
	})

	g.GET(PagePath, m.handler.Page)
	g.GET(SocketPath, m.handler.ServeWS)
	g.POST(SendPath, m.handler.Send)

	slog.Info("Booted VoidModule")
	return nil
}

// Shutdown ends open surface sessions.
func (m *VoidModule) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down VoidModule...")
	if m.handler == nil {
		return nil
	}
	return m.handler.Close(ctx)
}

type observedResponder struct {
	next     surface.Responder
	observer ResponseObserver
}

func (o observedResponder) Respond(message string) (string, bool) {
	reply, ok := o.next.Respond(message)
	o.observer.ObserveResponse(ok)
	return reply, ok
}
