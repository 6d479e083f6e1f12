// Package surface owns the presentation state of one Void Inbox page: whether
// a reply is on screen, how much of it has been revealed, and when it goes away.
package surface

import "strings"

// State is what the page shows below the input.
type State struct {
	// Visible is true while a reply is on screen.
	Visible bool
	// Reply is the full reply being shown.
	Reply string
	// Shown is the revealed prefix of Reply.
	Shown string
	// Typing is true until the whole reply has been revealed.
	Typing bool
}

// Event drives a State transition.
type Event interface {
	apply(State) State
}

// Submitted records the Responder's answer to an accepted submission.
type Submitted struct {
	Reply   string
	Replied bool
}

// RevealTick carries the next revealed prefix.
type RevealTick struct {
	Prefix string
}

// RevealFinished marks the end of the reveal; the dwell starts here.
type RevealFinished struct{}

// AutoHide fires when the dwell time has elapsed.
type AutoHide struct{}

// Apply returns the state after ev.
func (s State) Apply(ev Event) State {
	return ev.apply(s)
}

// A silent Void leaves whatever is on screen alone.
func (e Submitted) apply(s State) State {
	if !e.Replied {
		return s
	}
	return State{Visible: true, Reply: e.Reply, Typing: true}
}

// Ticks only ever grow the revealed text.
func (e RevealTick) apply(s State) State {
	if !s.Typing || len(e.Prefix) <= len(s.Shown) {
		return s
	}
	s.Shown = e.Prefix
	return s
}

func (RevealFinished) apply(s State) State {
	if !s.Visible {
		return s
	}
	s.Typing = false
	return s
}

func (AutoHide) apply(State) State {
	return State{}
}

// IsBlank reports whether a message is empty or whitespace only. Blank
// messages never reach the Responder.
func IsBlank(message string) bool {
	return strings.TrimSpace(message) == ""
}
