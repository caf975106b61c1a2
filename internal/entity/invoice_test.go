package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/portal/internal/entity"
)

func TestInvoice_Totals(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name         string
		amount       string
		wantSubtotal string
		wantTotal    string
	}{
		{name: "zero", amount: "0", wantSubtotal: "0.00", wantTotal: "19.00"},
		{name: "round", amount: "100.00", wantSubtotal: "100.00", wantTotal: "119.00"},
		{name: "cents", amount: "0.10", wantSubtotal: "0.10", wantTotal: "19.10"},
		{name: "large", amount: "1000000.99", wantSubtotal: "1000000.99", wantTotal: "1000019.99"},
		{name: "sub-cent rounds up", amount: "500.995", wantSubtotal: "501.00", wantTotal: "520.00"},
		{name: "sub-cent rounds down", amount: "500.994", wantSubtotal: "500.99", wantTotal: "519.99"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inv := entity.Invoice{Amount: decimal.RequireFromString(tt.amount)}
			totals := inv.Totals()

			require.True(t, totals.Subtotal.Equal(decimal.RequireFromString(tt.wantSubtotal)), totals.Subtotal.String())
			require.True(t, totals.PlatformFee.Equal(decimal.RequireFromString("19")))
			require.True(t, totals.Total.Equal(decimal.RequireFromString(tt.wantTotal)), totals.Total.String())
			require.True(t, totals.Total.Equal(totals.Subtotal.Add(totals.PlatformFee)))
		})
	}
}

func TestNormalizeInvoiceStatus(t *testing.T) {
	t.Parallel()

	require.Equal(t, entity.InvoiceStatusPending, entity.NormalizeInvoiceStatus("pending"))
	require.Equal(t, entity.InvoiceStatusPaid, entity.NormalizeInvoiceStatus("paid"))
	require.Equal(t, entity.InvoiceStatus("Overdue soon"), entity.NormalizeInvoiceStatus("overdue soon"))
	require.Equal(t, entity.InvoiceStatus(""), entity.NormalizeInvoiceStatus(""))
	require.True(t, entity.InvoiceStatus("PAID").IsPaid())
	require.False(t, entity.InvoiceStatusPending.IsPaid())
}

func TestMapGatewayPaymentStatus(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]entity.PaymentStatus{
		"created":    entity.PaymentStatusPending,
		"authorized": entity.PaymentStatusPending,
		"captured":   entity.PaymentStatusPaid,
		"failed":     entity.PaymentStatusFailed,
		"refunded":   entity.PaymentStatus("refunded"),
	} {
		require.Equal(t, want, entity.MapGatewayPaymentStatus(in), in)
	}
}

func TestBackendMessage(t *testing.T) {
	t.Parallel()

	err := &entity.BackendError{StatusCode: 400, Message: "invoice already settled"}

	require.ErrorIs(t, err, entity.ErrNetwork)
	require.Equal(t, "invoice already settled", entity.BackendMessage(err))
	require.Empty(t, entity.BackendMessage(entity.ErrNetwork))
}
