// Package payments is the read model behind the payment history page.
package payments

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/portal/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=payments.go -destination=../mocks/payments.go -package=mocks -mock_names=Fetcher=MockPaymentFetcher

// PageSize is the number of payments on one history page.
const PageSize = 7

type Fetcher interface {
	Payments(ctx context.Context, customerID string) ([]entity.Payment, error)
}

// MaxDays bounds Filter.Days so the period always fits in a time.Duration.
const MaxDays = 100 * 365

type Filter struct {
	Search string
	// Status must match exactly. Empty or "All" disables it.
	Status string
	// Days keeps payments created within the last Days days. Zero disables it.
	// Larger values than MaxDays count as MaxDays.
	Days int
}

func (f Filter) Apply(payments []entity.Payment, now time.Time) []entity.Payment {
	out := make([]entity.Payment, 0, len(payments))
	query := strings.ToLower(strings.TrimSpace(f.Search))
	status := strings.TrimSpace(f.Status)

	var cutoff time.Time
	if f.Days > 0 {
		cutoff = now.Add(-time.Duration(min(f.Days, MaxDays)) * 24 * time.Hour)
	}

	for _, p := range payments {
		if query != "" && !matches(p, query) {
			continue
		}

		if status != "" && !strings.EqualFold(status, "all") && p.Status.String() != status {
			continue
		}

		if !cutoff.IsZero() && p.CreatedAt.Before(cutoff) {
			continue
		}

		out = append(out, p)
	}

	return out
}

func matches(p entity.Payment, query string) bool {
	return strings.Contains(strings.ToLower(p.CustomerName), query) ||
		strings.Contains(strings.ToLower(p.TransactionID), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(p.Amount.String(), query)
}

type Totals struct {
	Total    decimal.Decimal
	Refunded decimal.Decimal
	Count    int
}

// Summarize sums payments. Refunded payments count towards Refunded only.
func Summarize(payments []entity.Payment) Totals {
	t := Totals{Total: decimal.Zero, Refunded: decimal.Zero, Count: len(payments)}

	for _, p := range payments {
		if p.Status == entity.PaymentStatusRefunded {
			t.Refunded = t.Refunded.Add(p.Amount)
			continue
		}

		t.Total = t.Total.Add(p.Amount)
	}

	return t
}

type View struct {
	Filter Filter
	Totals Totals
	Page   entity.Page[entity.Payment]
}

type Service struct {
	fetcher Fetcher
	now     func() time.Time
}

func New(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher, now: time.Now}
}

// Query loads the payments of customerID and returns page n of those matching f.
// Totals cover every matching payment, not only the page.
func (s *Service) Query(ctx context.Context, customerID string, f Filter, n int) (View, error) {
	all, err := s.fetcher.Payments(ctx, customerID)
	if err != nil {
		return View{}, fmt.Errorf("load payments of customer %s: %w", customerID, err)
	}

	filtered := f.Apply(all, s.now())

	return View{
		Filter: f,
		Totals: Summarize(filtered),
		Page:   entity.Paginate(filtered, n, PageSize),
	}, nil
}
