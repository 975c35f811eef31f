// Package live serves interactive galleries over websockets. A rendered
// case-study page registers its gallery under a one-time token; the page's
// client claims it by token and then streams input events, receiving the
// resulting view operations back.
package live

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/folio/internal/gallery"
)

// DefaultTTL is how long an unclaimed gallery is kept.
const DefaultTTL = 5 * time.Minute

type entry struct {
	gallery *gallery.Gallery
	expires time.Time
}

// Registry holds galleries of rendered pages until their client claims them.
type Registry struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

// NewRegistry creates a registry whose unclaimed entries expire after ttl.
// A non-positive ttl means DefaultTTL.
func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// Register stores g and returns the token its client must present.
func (r *Registry) Register(g *gallery.Gallery) string {
	token := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.pruneLocked()
	r.entries[token] = entry{gallery: g, expires: r.now().Add(r.ttl)}
	return token
}

// Claim removes and returns the gallery for token. Each token can be
// claimed once; expired tokens cannot be claimed.
func (r *Registry) Claim(token string) (*gallery.Gallery, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[token]
	if !ok {
		return nil, false
	}
	delete(r.entries, token)
	if !r.now().Before(e.expires) {
		return nil, false
	}
	return e.gallery, true
}

// Len reports how many unexpired galleries are waiting to be claimed.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pruneLocked()
	return len(r.entries)
}

func (r *Registry) pruneLocked() {
	now := r.now()
	for token, e := range r.entries {
		if !now.Before(e.expires) {
			delete(r.entries, token)
		}
	}
}
