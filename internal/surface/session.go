package surface

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nfrund/voidinbox/internal/reveal"
)

// Responder answers a non-blank message with zero or one reply.
type Responder interface {
	Respond(message string) (string, bool)
}

// View receives the session's output.
type View interface {
	// ClearInput empties the message field.
	ClearInput(ctx context.Context) error
	// Render draws st.
	Render(ctx context.Context, st State) error
}

// Timing holds the reveal policy.
type Timing struct {
	RevealInterval time.Duration
	Dwell          time.Duration
}

// Session is the presentation component for one page load. All state lives
// in the goroutine running Run.
type Session struct {
	responder Responder
	view      View
	timing    Timing
	logger    *slog.Logger
	state     State
}

// NewSession creates a Session. A nil logger uses slog.Default().
func NewSession(r Responder, v View, timing Timing, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		responder: r,
		view:      v,
		timing:    timing,
		logger:    logger,
	}
}

// Run processes submissions until the channel is closed or ctx is done.
// A reply that arrives while another is still on screen replaces it; a
// silent answer leaves the screen as it is.
func (s *Session) Run(ctx context.Context, submissions <-chan string) error {
	var (
		frames     <-chan string
		stopReveal context.CancelFunc = func() {}
		dwell      *time.Timer
		hide       <-chan time.Time
	)
	defer func() {
		stopReveal()
		if dwell != nil {
			dwell.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg, ok := <-submissions:
			if !ok {
				return nil
			}
			if IsBlank(msg) {
				continue
			}
			if err := s.view.ClearInput(ctx); err != nil {
				return fmt.Errorf("failed to clear input: %w", err)
			}

			reply, replied := s.responder.Respond(msg)
			if !replied {
				s.logger.Debug("The Void stayed silent")
				continue
			}
			s.logger.Debug("The Void replied", "length", len(reply))

			stopReveal()
			if dwell != nil {
				dwell.Stop()
				dwell, hide = nil, nil
			}
			if err := s.transition(ctx, Submitted{Reply: reply, Replied: true}); err != nil {
				return err
			}
			revealCtx, cancel := context.WithCancel(ctx)
			stopReveal = cancel
			frames = reveal.Schedule(revealCtx, reply, s.timing.RevealInterval)

		case prefix, ok := <-frames:
			if !ok {
				frames = nil
				if err := s.transition(ctx, RevealFinished{}); err != nil {
					return err
				}
				dwell = time.NewTimer(s.timing.Dwell)
				hide = dwell.C
				continue
			}
			if err := s.transition(ctx, RevealTick{Prefix: prefix}); err != nil {
				return err
			}

		case <-hide:
			dwell, hide = nil, nil
			if err := s.transition(ctx, AutoHide{}); err != nil {
				return err
			}
		}
	}
}

func (s *Session) transition(ctx context.Context, ev Event) error {
	s.state = s.state.Apply(ev)
	if err := s.view.Render(ctx, s.state); err != nil {
		return fmt.Errorf("failed to render %T: %w", ev, err)
	}
	return nil
}
