package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/voidinbox/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	htmxScriptURL   = "https://unpkg.com/htmx.org@2.0.4"
	htmxWSScriptURL = "https://unpkg.com/htmx-ext-ws@2.0.2/ws.js"
)

// Meta describes the document head of a page.
type Meta struct {
	Title        string
	Description  string
	CanonicalURL string
}

// Base wraps body in the full HTML document.
func Base(meta Meta, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return document(meta, view.AdaptTemplToGomponent(ctx, body)).Render(w)
	})
}

func document(meta Meta, body g.Node) g.Node {
	title := CalculateTitle(meta.Title)
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(title)),
				g.If(meta.Description != "", h.Meta(h.Name("description"), h.Content(meta.Description))),
				g.If(meta.CanonicalURL != "", h.Link(h.Rel("canonical"), h.Href(meta.CanonicalURL))),
				h.Meta(g.Attr("property", "og:title"), h.Content(title)),
				h.Meta(g.Attr("property", "og:site_name"), h.Content(siteName)),
				h.Meta(g.Attr("property", "og:type"), h.Content("website")),
				g.If(meta.Description != "", h.Meta(g.Attr("property", "og:description"), h.Content(meta.Description))),
				g.If(meta.CanonicalURL != "", h.Meta(g.Attr("property", "og:url"), h.Content(meta.CanonicalURL))),
				h.Meta(h.Name("twitter:card"), h.Content("summary")),
				h.Meta(h.Name("twitter:title"), h.Content(title)),
				g.If(meta.Description != "", h.Meta(h.Name("twitter:description"), h.Content(meta.Description))),
				h.Meta(h.Name("theme-color"), h.Content("#000000")),
				h.Meta(h.Name("color-scheme"), h.Content("dark")),
				h.Link(h.Rel("stylesheet"), h.Href("/static/void.css")),
				h.Script(h.Src(htmxScriptURL)),
				h.Script(h.Src(htmxWSScriptURL)),
			),
			h.Body(body),
		),
	)
}
