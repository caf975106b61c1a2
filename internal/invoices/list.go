// Package invoices keeps the per-customer invoice list shown in the portal and
// reconciles it with the backend after a payment.
package invoices

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/samandr77/microservices/portal/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=list.go -destination=../mocks/invoices.go -package=mocks

type Fetcher interface {
	Invoices(ctx context.Context, customerID string) ([]entity.Invoice, error)
}

type View struct {
	Filter Filter
	// Summary covers the whole list regardless of Filter.
	Summary []StatusSummary
	Page    entity.Page[entity.Invoice]
}

// List is the invoice list of one customer. Every load replaces the whole
// list; responses that arrive after a newer one was applied are dropped.
type List struct {
	customerID string
	fetcher    Fetcher
	now        func() time.Time

	generation atomic.Uint64

	mu       sync.RWMutex
	invoices []entity.Invoice
	applied  uint64
	loaded   bool
	filter   Filter
	page     int
	lastUsed time.Time
}

func NewList(customerID string, fetcher Fetcher) *List {
	return &List{
		customerID: customerID,
		fetcher:    fetcher,
		now:        time.Now,
		page:       1,
		lastUsed:   time.Now(),
	}
}

func (l *List) CustomerID() string {
	return l.customerID
}

// Load fetches all invoices of the customer. On error the previous list is kept.
func (l *List) Load(ctx context.Context) error {
	gen := l.generation.Add(1)

	invoices, err := l.fetcher.Invoices(ctx, l.customerID)
	if err != nil {
		return fmt.Errorf("load invoices of customer %s: %w", l.customerID, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen < l.applied {
		slog.WarnContext(ctx, "invoice list response discarded",
			"customer_id", l.customerID,
			"generation", gen,
			"applied_generation", l.applied,
			"error", entity.ErrStaleResponse,
		)

		return nil
	}

	l.applied = gen
	l.invoices = invoices
	l.loaded = true

	return nil
}

func (l *List) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.loaded
}

// Invoice returns the invoice with id from the current list.
func (l *List) Invoice(id int64) (entity.Invoice, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, inv := range l.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}

	return entity.Invoice{}, fmt.Errorf("invoice %d: %w", id, entity.ErrNotFound)
}

// MarkPaid flips the invoice to Paid locally until the next load confirms it.
func (l *List) MarkPaid(id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.invoices {
		if l.invoices[i].ID == id {
			l.invoices[i].Status = entity.InvoiceStatusPaid
			return nil
		}
	}

	return fmt.Errorf("invoice %d: %w", id, entity.ErrNotFound)
}

// Reconcile marks the invoice paid and reloads the list from the backend.
func (l *List) Reconcile(ctx context.Context, id int64) error {
	err := l.MarkPaid(id)
	if err != nil {
		slog.WarnContext(ctx, "reconciled invoice is not in the list", "error", err)
	}

	return l.Load(ctx)
}

// SetFilter changes the filter; any actual change moves back to the first page.
func (l *List) SetFilter(f Filter) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.setFilter(f)
}

func (l *List) setFilter(f Filter) {
	f = f.normalized()
	if f != l.filter {
		l.filter = f
		l.page = 1
	}
}

func (l *List) SetPage(n int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.page = max(n, 1)
}

// Query applies f and then selects page n. A filter different from the
// previous one always yields page 1.
func (l *List) Query(f Filter, n int) View {
	l.mu.Lock()
	defer l.mu.Unlock()

	prev := l.filter
	l.setFilter(f)

	if l.filter == prev {
		l.page = max(n, 1)
	}

	return l.view()
}

func (l *List) View() View {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.view()
}

func (l *List) view() View {
	l.lastUsed = l.now()

	return View{
		Filter:  l.filter,
		Summary: Summarize(l.invoices),
		Page:    entity.Paginate(l.filter.Apply(l.invoices), l.page, entity.DefaultPageSize),
	}
}

func (l *List) idleSince() time.Time {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.lastUsed
}
