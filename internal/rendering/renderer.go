package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"maragu.dev/gomponents"
)

// Renderer turns page and fragment components into HTML.
type Renderer interface {
	// RenderComponent renders a component to bytes, for htmx fragments pushed
	// over the WebSocket.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderPage writes a full page response.
	RenderPage(c echo.Context, status int, component any) error
}

// ComponentRenderer renders templ.Component and gomponents.Node values. It
// also satisfies echo.Renderer so handlers can call c.Render.
type ComponentRenderer struct{}

var (
	_ Renderer      = (*ComponentRenderer)(nil)
	_ echo.Renderer = (*ComponentRenderer)(nil)
)

// New creates a ComponentRenderer.
func New() *ComponentRenderer {
	return &ComponentRenderer{}
}

func (r *ComponentRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponents.Node:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type %T", component)
	}
}

// RenderComponent implements Renderer.
func (r *ComponentRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements Renderer. The component is buffered first so a
// failed render still produces a clean error response.
func (r *ComponentRenderer) RenderPage(c echo.Context, status int, component any) error {
	body, err := r.RenderComponent(c.Request().Context(), component)
	if err != nil {
		return err
	}
	return c.HTMLBlob(status, body)
}

// Render implements echo.Renderer. The name is ignored; the component is
// passed as data.
func (r *ComponentRenderer) Render(w io.Writer, _ string, data any, c echo.Context) error {
	ctx := context.Background()
	if c != nil {
		ctx = c.Request().Context()
		if c.Response().Header().Get(echo.HeaderContentType) == "" {
			c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		}
	}
	return r.render(ctx, data, w)
}
