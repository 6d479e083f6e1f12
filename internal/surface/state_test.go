package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_ReplyLifecycle(t *testing.T) {
	var s State

	s = s.Apply(Submitted{Reply: "hush", Replied: true})
	assert.Equal(t, State{Visible: true, Reply: "hush", Typing: true}, s)

	s = s.Apply(RevealTick{Prefix: "h"})
	s = s.Apply(RevealTick{Prefix: "hu"})
	assert.Equal(t, "hu", s.Shown)
	assert.True(t, s.Typing)

	s = s.Apply(RevealTick{Prefix: "hush"})
	s = s.Apply(RevealFinished{})
	assert.Equal(t, State{Visible: true, Reply: "hush", Shown: "hush"}, s)

	s = s.Apply(AutoHide{})
	assert.Equal(t, State{}, s)
}

func TestState_SilentSubmissionKeepsScreen(t *testing.T) {
	s := State{Visible: true, Reply: "hush", Shown: "hu", Typing: true}
	assert.Equal(t, s, s.Apply(Submitted{}))
	assert.Equal(t, State{}, State{}.Apply(Submitted{}))
}

func TestState_NewReplyReplaces(t *testing.T) {
	s := State{Visible: true, Reply: "first", Shown: "fir", Typing: true}
	s = s.Apply(Submitted{Reply: "second", Replied: true})
	assert.Equal(t, State{Visible: true, Reply: "second", Typing: true}, s)
}

func TestState_TicksNeverShrink(t *testing.T) {
	s := State{Visible: true, Reply: "hush", Shown: "hus", Typing: true}
	assert.Equal(t, "hus", s.Apply(RevealTick{Prefix: "hu"}).Shown)
	assert.Equal(t, "hus", s.Apply(RevealTick{Prefix: "hus"}).Shown)
}

func TestState_TicksIgnoredWhenNotTyping(t *testing.T) {
	assert.Equal(t, State{}, State{}.Apply(RevealTick{Prefix: "x"}))

	done := State{Visible: true, Reply: "ab", Shown: "ab"}
	assert.Equal(t, done, done.Apply(RevealTick{Prefix: "abc"}))
}

func TestState_FinishedOnHiddenIsNoop(t *testing.T) {
	assert.Equal(t, State{}, State{}.Apply(RevealFinished{}))
}

func TestIsBlank(t *testing.T) {
	for _, msg := range []string{"", " ", "\t\n", "\u00a0\u2003"} {
		assert.True(t, IsBlank(msg), "%q should be blank", msg)
	}
	for _, msg := range []string{"hello", "  x  ", "."} {
		assert.False(t, IsBlank(msg), "%q should not be blank", msg)
	}
}
