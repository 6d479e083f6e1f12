package void

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/voidinbox/internal/middleware"
	"github.com/nfrund/voidinbox/internal/rendering"
	"github.com/nfrund/voidinbox/internal/surface"
	"github.com/nfrund/voidinbox/web/src/templates/components"
	"golang.org/x/sync/errgroup"
	g "maragu.dev/gomponents"
)

const (
	maxFrameBytes = 64 << 10
	writeTimeout  = 5 * time.Second
)

// ServeWS upgrades the connection and runs one surface session on it until
// the page goes away or the server shuts down.
func (h *Handler) ServeWS(c echo.Context) error {
	if !h.startSession() {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "server is shutting down")
	}
	defer h.sessions.Done()

	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		// Accept has already written the HTTP error response.
		middleware.FromContext(c.Request().Context()).Warn("Failed to upgrade WebSocket connection", "error", err)
		return nil
	}
	defer conn.CloseNow()
	conn.SetReadLimit(maxFrameBytes)

	stop := context.AfterFunc(h.closing, func() {
		conn.Close(websocket.StatusGoingAway, "server shutting down")
	})
	defer stop()

	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx).With("session_id", uuid.NewString())
	logger.Info("Void session opened")

	session := surface.NewSession(h.responder, &socketView{conn: conn, renderer: h.renderer}, h.opts.Timing, logger)
	submissions := make(chan string)

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		defer close(submissions)
		return readSubmissions(ctx, conn, submissions, logger)
	})
	grp.Go(func() error {
		return session.Run(ctx, submissions)
	})

	err = grp.Wait()
	if h.closing.Err() != nil || isNormalEnd(err) {
		logger.Info("Void session closed")
		return nil
	}
	logger.Warn("Void session ended with error", "error", err)
	return nil
}

// readSubmissions forwards the message of each frame to out.
func readSubmissions(ctx context.Context, conn *websocket.Conn, out chan<- string, logger *slog.Logger) error {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}

		var req SendRequest
		if err := json.Unmarshal(data, &req); err != nil {
			logger.Debug("Ignoring malformed frame", "error", err)
			continue
		}

		select {
		case out <- req.Message:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func isNormalEnd(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return true
	}
	return false
}

// socketView pushes out-of-band htmx fragments over the connection.
type socketView struct {
	conn     *websocket.Conn
	renderer rendering.Renderer
}

// ClearInput sends nothing: the form resets itself after ws-send, and
// swapping the field would drop text typed since then and the focus.
func (v *socketView) ClearInput(context.Context) error {
	return nil
}

func (v *socketView) Render(ctx context.Context, st surface.State) error {
	return v.send(ctx, components.ReplyBox(st, true))
}

func (v *socketView) send(ctx context.Context, node g.Node) error {
	body, err := v.renderer.RenderComponent(ctx, node)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return v.conn.Write(ctx, websocket.MessageText, body)
}
