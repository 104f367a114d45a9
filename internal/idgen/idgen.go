// Package idgen is the single shared ULID source for the core: user ids,
// card ids, and review-log ids are all 26-character Crockford base32 ULIDs
// drawn from one monotonic entropy source per process.
package idgen

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator produces monotonic ULIDs. ulid.Monotonic is not safe for
// concurrent use on its own, so Generator guards it with a mutex.
type Generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func New() *Generator {
	return &Generator{}
}

// New returns a fresh ULID string for the given instant.
func (g *Generator) New(at time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.entropy == nil {
		g.entropy = ulid.Monotonic(rand.Reader, 0)
	}
	return ulid.MustNew(ulid.Timestamp(at), g.entropy).String()
}

// Default is a process-wide generator for call sites that do not thread one
// through explicitly.
var Default = New()
