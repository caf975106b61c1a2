package checkout

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/samandr77/microservices/portal/internal/entity"
)

// Bridge is a Widget whose UI runs in the browser. Open parks the attempt
// until the browser reports the widget result through Resolve.
type Bridge struct {
	scriptURL string
	client    *http.Client
	ttl       time.Duration
	now       func() time.Time

	loadMu sync.Mutex
	loaded bool

	mu       sync.Mutex
	sessions map[int64]*widgetSession
}

type widgetSession struct {
	openedAt time.Time
	result   chan entity.CheckoutResult
}

func NewBridge(scriptURL string, client *http.Client, ttl time.Duration) *Bridge {
	return &Bridge{
		scriptURL: scriptURL,
		client:    client,
		ttl:       ttl,
		now:       time.Now,
		sessions:  make(map[int64]*widgetSession),
	}
}

// Load makes sure the checkout script is reachable. A successful load is reused.
func (b *Bridge) Load(ctx context.Context) error {
	b.loadMu.Lock()
	defer b.loadMu.Unlock()

	if b.loaded {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.scriptURL, nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %w", entity.ErrGatewayLoad, err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", entity.ErrGatewayLoad, err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: checkout script responded %d", entity.ErrGatewayLoad, resp.StatusCode)
	}

	b.loaded = true

	return nil
}

func (b *Bridge) Open(ctx context.Context, opts entity.CheckoutOptions, onOpen func()) (entity.CheckoutResult, error) {
	id := opts.Notes.InvoiceID
	s := &widgetSession{
		openedAt: b.now(),
		result:   make(chan entity.CheckoutResult, 1),
	}

	b.mu.Lock()
	b.sessions[id] = s
	b.mu.Unlock()

	defer b.remove(id, s)

	onOpen()

	select {
	case res := <-s.result:
		return res, nil
	case <-ctx.Done():
		return entity.CheckoutResult{}, ctx.Err()
	}
}

// Resolve hands the widget result for invoiceID to the waiting attempt.
func (b *Bridge) Resolve(invoiceID int64, res entity.CheckoutResult) error {
	b.mu.Lock()
	s, ok := b.sessions[invoiceID]
	delete(b.sessions, invoiceID)
	b.mu.Unlock()

	if !ok {
		return fmt.Errorf("invoice %d: %w", invoiceID, entity.ErrNoCheckout)
	}

	s.result <- res

	return nil
}

// ExpireStale dismisses widgets left open for longer than the session TTL.
func (b *Bridge) ExpireStale(ctx context.Context) error {
	deadline := b.now().Add(-b.ttl)

	b.mu.Lock()
	var expired []*widgetSession

	for id, s := range b.sessions {
		if s.openedAt.Before(deadline) {
			expired = append(expired, s)
			delete(b.sessions, id)
		}
	}
	b.mu.Unlock()

	for _, s := range expired {
		s.result <- entity.DismissedCheckout()
	}

	if len(expired) > 0 {
		slog.InfoContext(ctx, "abandoned checkouts dismissed", "count", len(expired))
	}

	return nil
}

func (b *Bridge) remove(id int64, s *widgetSession) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sessions[id] == s {
		delete(b.sessions, id)
	}
}
