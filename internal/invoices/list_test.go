package invoices_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/internal/invoices"
	"github.com/samandr77/microservices/portal/internal/mocks"
)

func TestList_Load(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)

	gomock.InOrder(
		fetcher.EXPECT().Invoices(ctx, "cust-1").Return(sampleInvoices(), nil),
		fetcher.EXPECT().Invoices(ctx, "cust-1").Return(nil, &entity.BackendError{StatusCode: 500}),
	)

	l := invoices.NewList("cust-1", fetcher)
	require.False(t, l.Loaded())

	require.NoError(t, l.Load(ctx))
	require.True(t, l.Loaded())
	require.Equal(t, 3, l.View().Page.TotalItems)

	err := l.Load(ctx)
	require.ErrorIs(t, err, entity.ErrNetwork)
	require.Equal(t, 3, l.View().Page.TotalItems, "failed reload keeps the previous list")
}

func TestList_StaleResponseDiscarded(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)

	entered := make(chan struct{})
	release := make(chan struct{})

	stale := []entity.Invoice{{ID: 1, Status: entity.InvoiceStatusPending}}
	fresh := []entity.Invoice{{ID: 1, Status: entity.InvoiceStatusPaid}}

	gomock.InOrder(
		fetcher.EXPECT().Invoices(ctx, "cust-1").DoAndReturn(func(context.Context, string) ([]entity.Invoice, error) {
			close(entered)
			<-release

			return stale, nil
		}),
		fetcher.EXPECT().Invoices(ctx, "cust-1").Return(fresh, nil),
	)

	l := invoices.NewList("cust-1", fetcher)

	errCh := make(chan error, 1)

	go func() {
		errCh <- l.Load(ctx)
	}()

	<-entered
	require.NoError(t, l.Load(ctx))

	close(release)
	require.NoError(t, <-errCh)

	inv, err := l.Invoice(1)
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusPaid, inv.Status)
}

func TestList_Query(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)

	invs := make([]entity.Invoice, 23)
	for i := range invs {
		invs[i] = entity.Invoice{ID: int64(i + 1), Status: entity.InvoiceStatusPending}
	}

	invs[22].Status = entity.InvoiceStatusPaid

	fetcher.EXPECT().Invoices(ctx, "cust-1").Return(invs, nil)

	l := invoices.NewList("cust-1", fetcher)
	require.NoError(t, l.Load(ctx))

	v := l.Query(invoices.Filter{}, 3)
	require.Equal(t, 3, v.Page.Number)
	require.Equal(t, 3, v.Page.TotalPages)
	require.Len(t, v.Page.Items, 3)

	v = l.Query(invoices.Filter{Status: "pending"}, 3)
	require.Equal(t, 1, v.Page.Number, "changing the filter resets the page")
	require.Equal(t, 22, v.Page.TotalItems)
	require.Len(t, v.Page.Items, 10)

	v = l.Query(invoices.Filter{Status: "Pending "}, 2)
	require.Equal(t, 2, v.Page.Number, "equivalent filter keeps the requested page")

	l.SetFilter(invoices.Filter{Status: "paid"})
	v = l.View()
	require.Equal(t, 1, v.Page.Number)
	require.Equal(t, []int64{23}, ids(v.Page.Items))

	l.SetPage(0)
	require.Equal(t, 1, l.View().Page.Number)
}

func TestList_Reconcile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)

	pending := []entity.Invoice{{ID: 7, Status: entity.InvoiceStatusPending}, {ID: 8, Status: entity.InvoiceStatusPending}}
	settled := []entity.Invoice{{ID: 7, Status: entity.InvoiceStatusPaid}, {ID: 8, Status: entity.InvoiceStatusPending}}

	gomock.InOrder(
		fetcher.EXPECT().Invoices(ctx, "cust-1").Return(pending, nil),
		fetcher.EXPECT().Invoices(ctx, "cust-1").Return(nil, entity.ErrNetwork),
		fetcher.EXPECT().Invoices(ctx, "cust-1").Return(settled, nil),
	)

	l := invoices.NewList("cust-1", fetcher)
	require.NoError(t, l.Load(ctx))

	err := l.Reconcile(ctx, 7)
	require.ErrorIs(t, err, entity.ErrNetwork)

	inv, err := l.Invoice(7)
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusPaid, inv.Status, "optimistic status survives a failed reload")

	require.NoError(t, l.Reconcile(ctx, 7))

	inv, err = l.Invoice(8)
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusPending, inv.Status)

	require.ErrorIs(t, l.MarkPaid(99), entity.ErrNotFound)

	_, err = l.Invoice(99)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestList_SummaryIgnoresFilter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)

	fetcher.EXPECT().Invoices(ctx, "cust-1").Return(sampleInvoices(), nil)

	l := invoices.NewList("cust-1", fetcher)
	require.NoError(t, l.Load(ctx))

	v := l.Query(invoices.Filter{Status: "pending"}, 1)
	require.Equal(t, 1, v.Page.TotalItems)
	require.Equal(t, invoices.Summarize(sampleInvoices()), v.Summary)
	require.Equal(t, 2, v.Summary[0].Count)
}
