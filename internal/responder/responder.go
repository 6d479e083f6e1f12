// Package responder decides whether the Void answers a message and with what.
package responder

import (
	"math/rand/v2"
	"sync"

	"github.com/nfrund/voidinbox/internal/replies"
)

// Source is the randomness a Responder draws from. *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64
	// IntN returns a uniform value in [0,n).
	IntN(n int) int
}

// Responder is the probability-gated lookup producing zero or one reply per
// message. It is safe for concurrent use when its Source is.
type Responder struct {
	pool      *replies.Pool
	threshold float64
	src       Source
}

// Option configures a Responder.
type Option func(*Responder)

// WithSource replaces the random source.
func WithSource(src Source) Option {
	return func(r *Responder) { r.src = src }
}

// WithSeed uses a deterministic source seeded with seed.
func WithSeed(seed uint64) Option {
	return WithSource(NewSeededSource(seed))
}

// New creates a Responder replying with probability threshold.
func New(pool *replies.Pool, threshold float64, opts ...Option) *Responder {
	r := &Responder{
		pool:      pool,
		threshold: threshold,
		src:       globalSource{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Respond returns a reply from the pool and true when the draw falls below
// the threshold, otherwise "" and false. The message content does not
// influence the outcome; callers reject blank messages before calling.
func (r *Responder) Respond(message string) (string, bool) {
	if r.src.Float64() >= r.threshold {
		return "", false
	}
	return r.pool.At(r.src.IntN(r.pool.Len())), true
}

// Threshold returns the reply probability.
func (r *Responder) Threshold() float64 { return r.threshold }

// Pool returns the reply pool.
func (r *Responder) Pool() *replies.Pool { return r.pool }

// globalSource draws from math/rand/v2's process-wide generator.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// SeededSource is a deterministic Source guarded by a mutex.
type SeededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource returns a Source that yields the same sequence for the same seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (s *SeededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *SeededSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
