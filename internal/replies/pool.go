// Package replies holds the Void's canned replies.
package replies

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// ErrEmptyPool is returned when a pool source yields no replies.
var ErrEmptyPool = errors.New("reply pool is empty")

var defaultReplies = []string{
	"The Void heard you.",
	"Nothing answers. Except this once.",
	"Your words have reached the edge and kept going.",
	"Silence is also a reply.",
	"The Void has read your message. It has no comment.",
	"Somewhere, an echo agrees with you.",
	"You are not the first to say that here.",
	"Even the dark listens sometimes.",
	"Let it go. The Void will keep it.",
	"The Void nods slowly.",
	"That message is gone now. You can be lighter.",
	"Nobody is here. Nobody understood.",
	"The Void is not a therapist, but it is a good listener.",
	"Your message dissolved into the quiet.",
	"The Void returns your message, unopened.",
	"Try saying it out loud next time.",
	"The Void remembers nothing. That is a kindness.",
	"Received. Forgotten. As requested.",
	"Deep breath. Then another.",
	"The Void is smaller than you think, and kinder.",
}

// Pool is an ordered, read-only sequence of replies.
type Pool struct {
	replies []string
}

// New builds a pool from replies. Blank entries are dropped.
func New(replies []string) (*Pool, error) {
	kept := make([]string, 0, len(replies))
	for _, r := range replies {
		if r = strings.TrimSpace(r); r != "" {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return nil, ErrEmptyPool
	}
	return &Pool{replies: kept}, nil
}

// Default returns the built-in pool.
func Default() *Pool {
	p, _ := New(defaultReplies)
	return p
}

// LoadFile reads a pool from path on fs: one reply per line, blank lines and
// lines starting with '#' are skipped.
func LoadFile(fs afero.Fs, path string) (*Pool, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reply pool %q: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reply pool %q: %w", path, err)
	}

	p, err := New(lines)
	if err != nil {
		return nil, fmt.Errorf("reply pool %q: %w", path, err)
	}
	return p, nil
}

// Resolve returns the pool at path, or the default pool when path is empty.
func Resolve(fs afero.Fs, path string) (*Pool, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(fs, path)
}

// Len returns the number of replies.
func (p *Pool) Len() int { return len(p.replies) }

// At returns the reply at index i.
func (p *Pool) At(i int) string { return p.replies[i] }

// Contains reports whether s is one of the pool's replies.
func (p *Pool) Contains(s string) bool {
	for _, r := range p.replies {
		if r == s {
			return true
		}
	}
	return false
}

// All returns a copy of the replies in order.
func (p *Pool) All() []string {
	out := make([]string, len(p.replies))
	copy(out, p.replies)
	return out
}
