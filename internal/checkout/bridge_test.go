package checkout_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/portal/internal/checkout"
	"github.com/samandr77/microservices/portal/internal/entity"
)

type openResult struct {
	res entity.CheckoutResult
	err error
}

func TestBridge_Load(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	fail := atomic.Bool{}
	fail.Store(true)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)

		if fail.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		_, _ = w.Write([]byte("window.Razorpay = function() {}"))
	}))
	t.Cleanup(srv.Close)

	b := checkout.NewBridge(srv.URL, srv.Client(), time.Minute)
	ctx := context.Background()

	err := b.Load(ctx)
	require.ErrorIs(t, err, entity.ErrGatewayLoad)

	fail.Store(false)

	require.NoError(t, b.Load(ctx))
	require.NoError(t, b.Load(ctx))
	require.Equal(t, int32(2), hits.Load(), "a loaded script is reused")
}

func TestBridge_OpenResolve(t *testing.T) {
	t.Parallel()

	b := checkout.NewBridge("", http.DefaultClient, time.Minute)
	opts := entity.CheckoutOptions{OrderID: "order_1", Notes: entity.OrderNotes{InvoiceID: 7}}

	require.ErrorIs(t, b.Resolve(7, entity.DismissedCheckout()), entity.ErrNoCheckout)

	opened := make(chan struct{})
	resCh := make(chan openResult, 1)

	go func() {
		res, err := b.Open(context.Background(), opts, func() { close(opened) })
		resCh <- openResult{res: res, err: err}
	}()

	<-opened
	require.NoError(t, b.Resolve(7, entity.SucceededCheckout(testSignature)))
	require.Equal(t, openResult{res: entity.SucceededCheckout(testSignature)}, <-resCh)

	require.ErrorIs(t, b.Resolve(7, entity.DismissedCheckout()), entity.ErrNoCheckout, "a result is delivered once")
}

func TestBridge_OpenContextDone(t *testing.T) {
	t.Parallel()

	b := checkout.NewBridge("", http.DefaultClient, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	_, err := b.Open(ctx, entity.CheckoutOptions{Notes: entity.OrderNotes{InvoiceID: 3}}, cancel)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, b.Resolve(3, entity.DismissedCheckout()), entity.ErrNoCheckout)
}

func TestBridge_ExpireStale(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	clock := atomic.Pointer[time.Time]{}
	clock.Store(&now)

	b := checkout.NewBridge("", http.DefaultClient, 30*time.Minute)
	b.SetClock(func() time.Time { return *clock.Load() })

	opened := make(chan struct{})
	resCh := make(chan openResult, 1)

	go func() {
		res, err := b.Open(context.Background(), entity.CheckoutOptions{Notes: entity.OrderNotes{InvoiceID: 9}}, func() { close(opened) })
		resCh <- openResult{res: res, err: err}
	}()

	<-opened

	require.NoError(t, b.ExpireStale(context.Background()))
	require.Empty(t, resCh, "fresh widgets stay open")

	later := now.Add(31 * time.Minute)
	clock.Store(&later)

	require.NoError(t, b.ExpireStale(context.Background()))
	require.Equal(t, openResult{res: entity.DismissedCheckout()}, <-resCh)
}
