// Package reveal produces the typewriter sequence for a reply: successive
// prefixes, one character longer each time, on a fixed schedule.
package reveal

import (
	"context"
	"iter"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Prefixes yields the non-empty prefixes of text in order of strictly
// increasing length, ending with the whole text. Text is NFC-normalized first
// so a combining accent arrives together with its base letter.
func Prefixes(text string) iter.Seq[string] {
	text = norm.NFC.String(text)
	return func(yield func(string) bool) {
		for i := 0; i < len(text); {
			_, width := utf8.DecodeRuneInString(text[i:])
			i += width
			if !yield(text[:i]) {
				return
			}
		}
	}
}

// Steps returns how many prefixes Prefixes yields for text.
func Steps(text string) int {
	return utf8.RuneCountInString(norm.NFC.String(text))
}

// Duration is how long Schedule takes to reveal text fully.
func Duration(text string, interval time.Duration) time.Duration {
	return time.Duration(Steps(text)) * interval
}

// Schedule delivers the prefixes of text on the returned channel, one per
// interval, starting one interval after the call. The channel is closed after
// the full text is delivered or as soon as ctx is done.
func Schedule(ctx context.Context, text string, interval time.Duration) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for prefix := range Prefixes(text) {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			select {
			case out <- prefix:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
