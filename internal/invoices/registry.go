package invoices

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/samandr77/microservices/portal/internal/entity"
)

// Registry holds one List per session. Two tokens claiming the same customer
// get separate lists, each loaded from the backend with its own token.
type Registry struct {
	fetcher Fetcher
	now     func() time.Time

	mu    sync.Mutex
	lists map[string]*List
}

func NewRegistry(fetcher Fetcher) *Registry {
	return &Registry{
		fetcher: fetcher,
		now:     time.Now,
		lists:   make(map[string]*List),
	}
}

// List returns the list of sess, creating an empty one on first use.
func (r *Registry) List(sess entity.Session) *List {
	key := sess.CacheKey()

	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.lists[key]
	if !ok {
		l = NewList(sess.User.ID, r.fetcher)
		l.now = r.now
		l.lastUsed = r.now()
		r.lists[key] = l
	}

	return l
}

// Reconcile is called once a payment for invoiceID is verified.
func (r *Registry) Reconcile(ctx context.Context, sess entity.Session, invoiceID int64) error {
	return r.List(sess).Reconcile(ctx, invoiceID)
}

// EvictIdle drops lists nobody looked at for longer than maxIdle.
func (r *Registry) EvictIdle(ctx context.Context, maxIdle time.Duration) int {
	deadline := r.now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0

	for key, l := range r.lists {
		if l.idleSince().Before(deadline) {
			delete(r.lists, key)
			evicted++
		}
	}

	if evicted > 0 {
		slog.InfoContext(ctx, "idle invoice lists evicted", "count", evicted, "remaining", len(r.lists))
	}

	return evicted
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.lists)
}
