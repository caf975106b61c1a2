package invoices

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/portal/internal/entity"
)

// SummaryStatuses get a summary card each, in this order.
var SummaryStatuses = []entity.InvoiceStatus{entity.InvoiceStatusPaid, entity.InvoiceStatusPending}

type StatusSummary struct {
	Status entity.InvoiceStatus
	Count  int
	// Amount sums invoice amounts without the platform fee.
	Amount decimal.Decimal
	// Percent is Count of all invoices, rounded half up.
	Percent int
}

// Summarize counts and sums invoices per status over the given invoices.
// Statuses match ignoring case, as the status filter does.
func Summarize(invoices []entity.Invoice) []StatusSummary {
	out := make([]StatusSummary, 0, len(SummaryStatuses))

	for _, status := range SummaryStatuses {
		s := StatusSummary{Status: status, Amount: decimal.Zero}

		for _, inv := range invoices {
			if strings.EqualFold(string(inv.Status), string(status)) {
				s.Count++
				s.Amount = s.Amount.Add(inv.Amount)
			}
		}

		if n := len(invoices); n > 0 {
			s.Percent = (200*s.Count + n) / (2 * n)
		}

		out = append(out, s)
	}

	return out
}
