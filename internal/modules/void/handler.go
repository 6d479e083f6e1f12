package void

import (
	"context"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/voidinbox/internal/handlers"
	"github.com/nfrund/voidinbox/internal/middleware"
	"github.com/nfrund/voidinbox/internal/rendering"
	"github.com/nfrund/voidinbox/internal/surface"
	"github.com/nfrund/voidinbox/internal/view"
	"github.com/nfrund/voidinbox/web/src/templates/layouts"
	"github.com/nfrund/voidinbox/web/src/templates/pages"
)

// HandlerOptions configures a Handler.
type HandlerOptions struct {
	Timing     surface.Timing
	BaseURL    string
	SourceURL  string
	SocketPath string
}

// Handler serves the Void Inbox routes.
type Handler struct {
	responder surface.Responder
	renderer  rendering.Renderer
	opts      HandlerOptions

	// closing is cancelled by Close to end every open session. mu orders
	// sessions.Add against Close.
	mu       sync.Mutex
	closing  context.Context
	closeAll context.CancelFunc
	sessions sync.WaitGroup
}

// NewHandler creates a Handler.
func NewHandler(r surface.Responder, renderer rendering.Renderer, opts HandlerOptions) *Handler {
	if opts.SocketPath == "" {
		opts.SocketPath = SocketPath
	}
	closing, closeAll := context.WithCancel(context.Background())
	return &Handler{
		responder: r,
		renderer:  renderer,
		opts:      opts,
		closing:   closing,
		closeAll:  closeAll,
	}
}

// Page renders the Void Inbox page.
func (h *Handler) Page(c echo.Context) error {
	content := view.AdaptGomponentToTempl(pages.Inbox(h.opts.SocketPath, h.opts.SourceURL))
	page := layouts.Base(layouts.Meta{
		Description:  pages.Tagline,
		CanonicalURL: h.opts.BaseURL,
	}, content)
	return h.renderer.RenderPage(c, http.StatusOK, page)
}

// Send asks the Void once and returns the ReplyEvent as JSON. A blank
// message is accepted and ignored with 204 No Content.
func (h *Handler) Send(c echo.Context) error {
	var req SendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, handlers.ErrorResponse{
			Code:    "invalid_request",
			Message: "The request body could not be read.",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.NoContent(http.StatusNoContent)
	}

	reply, replied := h.responder.Respond(req.Message)
	middleware.FromContext(c.Request().Context()).Debug("Message sent to the Void", "replied", replied)

	return c.JSON(http.StatusOK, ReplyEvent{Replied: replied, Reply: reply})
}

// Close ends all open sessions and waits for them to finish, or for ctx.
func (h *Handler) Close(ctx context.Context) error {
	h.mu.Lock()
	h.closeAll()
	h.mu.Unlock()

	done := make(chan struct{})
	go func() {
		h.sessions.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// startSession counts a new session unless Close has been called.
func (h *Handler) startSession() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closing.Err() != nil {
		return false
	}
	h.sessions.Add(1)
	return true
}
