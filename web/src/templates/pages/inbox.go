package pages

import (
	"github.com/nfrund/voidinbox/internal/surface"
	"github.com/nfrund/voidinbox/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Tagline is shown under the heading and used as the page description.
const Tagline = "Write messages to no one. They disappear after you send them. Occasionally, the Void replies."

// Inbox is the Void Inbox page body. wsPath is the WebSocket endpoint the
// page connects to for its surface session. The header links to sourceURL
// when it is set.
func Inbox(wsPath, sourceURL string) g.Node {
	return h.Main(
		h.Class("void"),
		hx.Ext("ws"),
		g.Attr("ws-connect", wsPath),
		g.If(sourceURL != "", h.Header(
			h.A(
				h.Class("void-source"),
				h.Href(sourceURL),
				h.Target("_blank"),
				h.Rel("noopener noreferrer"),
				h.Title("View source code"),
				g.Text("Source"),
			),
		)),
		h.H1(g.Text("VOID INBOX")),
		h.P(g.Text(Tagline)),
		components.MessageForm(),
		components.ReplyBox(surface.State{}, false),
	)
}
