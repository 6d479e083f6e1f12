// Package components holds the Void Inbox fragments that are rendered both
// into the page and pushed over the WebSocket as out-of-band swaps.
package components

import (
	"github.com/nfrund/voidinbox/internal/surface"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Element IDs targeted by out-of-band swaps.
const (
	FormID         = "void-form"
	MessageFieldID = "void-message"
	ReplyID        = "void-reply"
)

// Enter sends, Shift+Enter inserts a newline. Blank text is never submitted.
const submitOnEnter = "if (event.key === 'Enter' && !event.shiftKey) { event.preventDefault(); if (this.value.trim()) this.form.requestSubmit(); }"

// skipBlank cancels a WebSocket send while the message is blank, so the form
// keeps its contents and nothing reaches the server.
const skipBlank = "if (!this.message.value.trim()) event.preventDefault()"

// afterSend clears the form and keeps focus in the field.
const afterSend = "this.reset(); this.querySelector('button').disabled = true; this.message.focus()"

// toggleSend enables the button only while the message has text.
const toggleSend = "this.form.querySelector('button').disabled = !this.value.trim()"

// MessageForm is the input form. htmx serialises it to JSON and sends it over
// the page's WebSocket, then resets it without waiting for the server.
func MessageForm() g.Node {
	return h.Form(
		h.ID(FormID),
		g.Attr("ws-send"),
		g.Attr("hx-on::ws-config-send", skipBlank),
		g.Attr("hx-on::ws-before-send", skipBlank),
		g.Attr("hx-on::ws-after-send", afterSend),
		MessageField(),
		h.Button(h.Type("submit"), h.Disabled(), g.Text("Send to Void")),
	)
}

// MessageField is the empty message textarea.
func MessageField() g.Node {
	return h.Textarea(
		h.ID(MessageFieldID),
		h.Name("message"),
		h.Placeholder("Write to the void..."),
		h.AutoFocus(),
		g.Attr("onkeydown", submitOnEnter),
		g.Attr("oninput", toggleSend),
	)
}

// ReplyBox draws the Void's reply for st. A hidden state renders an empty,
// hidden box so later swaps have a target.
func ReplyBox(st surface.State, oob bool) g.Node {
	return h.Div(
		h.ID(ReplyID),
		h.Class("void-reply"),
		g.Attr("aria-live", "polite"),
		g.If(oob, hx.SwapOOB("true")),
		g.If(!st.Visible, g.Attr("hidden")),
		g.If(st.Visible, h.P(
			g.Text(st.Shown),
			g.If(st.Typing, h.Span(h.Class("void-cursor"), g.Text("|"))),
		)),
	)
}
