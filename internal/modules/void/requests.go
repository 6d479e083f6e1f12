package void

// SendRequest is the body of POST /api/send and of each WebSocket frame
// the page sends (htmx ws-send serialises the form as JSON).
type SendRequest struct {
	Message string `json:"message" form:"message" validate:"notblank"`
}

// ReplyEvent is the outcome of one submission.
type ReplyEvent struct {
	Replied bool   `json:"replied"`
	Reply   string `json:"reply,omitempty"`
}
