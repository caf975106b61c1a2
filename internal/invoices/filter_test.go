package invoices_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/internal/invoices"
)

func sampleInvoices() []entity.Invoice {
	return []entity.Invoice{
		{ID: 101, CustomerName: "Jane Doe", ReturnName: "1040 Individual", ReturnType: entity.ReturnTypeTaxReturn,
			Amount: decimal.NewFromInt(500), Status: entity.InvoiceStatusPending},
		{ID: 102, CustomerName: "Acme LLC", ReturnName: "1120 Corporate", ReturnType: entity.ReturnTypeTaxReturn,
			Amount: decimal.NewFromInt(1200), Status: entity.InvoiceStatusPaid},
		{ID: 203, CustomerName: "John Smith", ReturnName: "Amended 1040-X", ReturnType: entity.ReturnTypeTaxReturn,
			Amount: decimal.NewFromInt(80), Status: entity.InvoiceStatus("paid")},
	}
}

func ids(invs []entity.Invoice) []int64 {
	out := make([]int64, 0, len(invs))
	for _, inv := range invs {
		out = append(out, inv.ID)
	}

	return out
}

func TestFilter_Apply(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name   string
		filter invoices.Filter
		want   []int64
	}{
		{name: "no filter", filter: invoices.Filter{}, want: []int64{101, 102, 203}},
		{name: "all", filter: invoices.Filter{Status: "ALL"}, want: []int64{101, 102, 203}},
		{name: "status ignores case", filter: invoices.Filter{Status: "PAID"}, want: []int64{102, 203}},
		{name: "status pending", filter: invoices.Filter{Status: "pending"}, want: []int64{101}},
		{name: "unknown status", filter: invoices.Filter{Status: "overdue"}, want: []int64{}},
		{name: "search customer", filter: invoices.Filter{Search: "acme"}, want: []int64{102}},
		{name: "search return name", filter: invoices.Filter{Search: "1040"}, want: []int64{101, 203}},
		{name: "search return type", filter: invoices.Filter{Search: "tax return"}, want: []int64{101, 102, 203}},
		{name: "search status", filter: invoices.Filter{Search: "pend"}, want: []int64{101}},
		{name: "search id", filter: invoices.Filter{Search: "20"}, want: []int64{203}},
		{name: "status and search", filter: invoices.Filter{Status: "paid", Search: "1040"}, want: []int64{203}},
		{name: "no match", filter: invoices.Filter{Search: "zzz"}, want: []int64{}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, ids(tt.filter.Apply(sampleInvoices())))
		})
	}
}

func TestFilter_OrderIndependent(t *testing.T) {
	t.Parallel()

	invs := sampleInvoices()

	for _, status := range []string{"", "paid", "Pending"} {
		for _, search := range []string{"", "1040", "smith", "10"} {
			a := invoices.ApplySearch(invoices.ApplyStatus(invs, status), search)
			b := invoices.ApplyStatus(invoices.ApplySearch(invs, search), status)

			require.Equal(t, ids(a), ids(b), "status=%q search=%q", status, search)
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	invs := sampleInvoices()
	out := invoices.Filter{}.Apply(invs)
	out[0].CustomerName = "changed"

	require.Equal(t, "Jane Doe", invs[0].CustomerName)
}
