package checkout_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/portal/internal/checkout"
	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/internal/mocks"
)

var (
	testUser = entity.User{ID: "user-1", Name: "Jane Doe", Email: "jane@example.com", Role: "customer"}

	testConfig = checkout.Config{KeyID: "rzp_test_key", Name: "TaxPortal", ThemeColor: "#2563EB"}

	testOrder = entity.Order{ID: "order_1", Amount: decimal.NewFromInt(50000), Currency: entity.CurrencyUSD}

	testSignature = entity.PaymentSignature{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"}

	testSession = entity.Session{Token: "token", User: testUser}
)

func testInvoice() entity.Invoice {
	return entity.Invoice{
		ID:           7,
		CustomerID:   "cust-7",
		CustomerName: "Jane Doe",
		ReturnName:   "1040 Individual",
		ReturnType:   entity.ReturnTypeTaxReturn,
		Amount:       decimal.RequireFromString("500.00"),
		Status:       entity.InvoiceStatusPending,
	}
}

func sessionCtx() context.Context {
	return entity.CtxWithSession(context.Background(), testSession)
}

type deps struct {
	backend    *mocks.MockBackend
	widget     *mocks.MockWidget
	reconciler *mocks.MockReconciler
	publisher  *mocks.MockPublisher
}

func newOrchestrator(t *testing.T) (*checkout.Orchestrator, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		backend:    mocks.NewMockBackend(ctrl),
		widget:     mocks.NewMockWidget(ctrl),
		reconciler: mocks.NewMockReconciler(ctrl),
		publisher:  mocks.NewMockPublisher(ctrl),
	}

	o := checkout.New(testConfig, d.backend, d.widget, d.reconciler, d.publisher)
	o.SetClock(func() time.Time { return time.UnixMilli(1700000000123) })

	return o, d
}

func openWith(res entity.CheckoutResult) func(context.Context, entity.CheckoutOptions, func()) (entity.CheckoutResult, error) {
	return func(_ context.Context, _ entity.CheckoutOptions, onOpen func()) (entity.CheckoutResult, error) {
		onOpen()
		return res, nil
	}
}

func TestOrchestrator_Pay_Settled(t *testing.T) {
	t.Parallel()

	o, d := newOrchestrator(t)

	var (
		gotReq  entity.OrderRequest
		gotOpts entity.CheckoutOptions
	)

	gomock.InOrder(
		d.backend.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req entity.OrderRequest) (entity.Order, error) {
				gotReq = req
				return testOrder, nil
			}),
		d.widget.EXPECT().Load(gomock.Any()).Return(nil),
		d.widget.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, opts entity.CheckoutOptions, onOpen func()) (entity.CheckoutResult, error) {
				gotOpts = opts
				onOpen()

				return entity.SucceededCheckout(testSignature), nil
			}),
		d.backend.EXPECT().VerifyPayment(gomock.Any(), testSignature).Return(true, nil),
		d.reconciler.EXPECT().Reconcile(gomock.Any(), testSession, int64(7)).Return(nil),
		d.publisher.EXPECT().PaymentSettled(gomock.Any(), entity.PaymentSettledEvent{
			InvoiceID:  7,
			CustomerID: "cust-7",
			OrderID:    "order_1",
			PaymentID:  "pay_1",
			Amount:     decimal.RequireFromString("500.00"),
			SettledAt:  time.UnixMilli(1700000000123),
		}),
	)

	out, err := o.Pay(sessionCtx(), testInvoice())
	require.NoError(t, err)
	require.Equal(t, checkout.Outcome{State: checkout.StateSettled, InvoiceID: 7, OrderID: "order_1", PaymentID: "pay_1"}, out)

	require.True(t, gotReq.Amount.Equal(decimal.RequireFromString("500")))
	require.Equal(t, entity.CurrencyUSD, gotReq.Currency)
	require.Equal(t, "rcpt_1700000000123", gotReq.Receipt)
	require.Equal(t, entity.OrderNotes{InvoiceID: 7, CustomerName: "Jane Doe"}, gotReq.Notes)
	require.Equal(t, int64(7), gotReq.InvoiceID)
	require.Equal(t, "customer", gotReq.CreatedByType)
	require.Equal(t, "user-1", gotReq.CreatedByID)

	require.Equal(t, entity.CheckoutOptions{
		Key:         "rzp_test_key",
		Amount:      50000,
		Currency:    entity.CurrencyUSD,
		Name:        "TaxPortal",
		Description: "Payment for Invoice 7",
		OrderID:     "order_1",
		Prefill:     entity.CheckoutPrefill{Name: "Jane Doe", Email: "jane@example.com"},
		Theme:       entity.CheckoutTheme{Color: "#2563EB"},
		Method:      entity.CheckoutMethods{Card: true},
		Notes:       entity.OrderNotes{InvoiceID: 7, CustomerName: "Jane Doe"},
	}, gotOpts)

	_, busy := o.Attempt(7)
	require.False(t, busy)
}

func TestOrchestrator_Pay_Failures(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		setup   func(d deps)
		wantErr error
		state   checkout.State
	}{
		{
			name: "order creation fails",
			setup: func(d deps) {
				d.backend.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					Return(entity.Order{}, &entity.BackendError{StatusCode: 400, Message: "Invoice already settled"})
			},
			wantErr: entity.ErrNetwork,
			state:   checkout.StateFailed,
		},
		{
			name: "script does not load",
			setup: func(d deps) {
				d.backend.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(testOrder, nil)
				d.widget.EXPECT().Load(gomock.Any()).Return(context.DeadlineExceeded)
			},
			wantErr: entity.ErrGatewayLoad,
			state:   checkout.StateFailed,
		},
		{
			name: "verification rejected",
			setup: func(d deps) {
				d.backend.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(testOrder, nil)
				d.widget.EXPECT().Load(gomock.Any()).Return(nil)
				d.widget.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(openWith(entity.SucceededCheckout(testSignature)))
				d.backend.EXPECT().VerifyPayment(gomock.Any(), testSignature).Return(false, nil)
			},
			wantErr: entity.ErrVerification,
			state:   checkout.StateFailed,
		},
		{
			name: "verification errors",
			setup: func(d deps) {
				d.backend.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(testOrder, nil)
				d.widget.EXPECT().Load(gomock.Any()).Return(nil)
				d.widget.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(openWith(entity.SucceededCheckout(testSignature)))
				d.backend.EXPECT().VerifyPayment(gomock.Any(), testSignature).
					Return(false, &entity.BackendError{StatusCode: 502})
			},
			wantErr: entity.ErrVerification,
			state:   checkout.StateFailed,
		},
		{
			name: "dismissed",
			setup: func(d deps) {
				d.backend.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(testOrder, nil)
				d.widget.EXPECT().Load(gomock.Any()).Return(nil)
				d.widget.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(openWith(entity.DismissedCheckout()))
			},
			state: checkout.StateCancelled,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o, d := newOrchestrator(t)
			tt.setup(d)

			out, err := o.Pay(sessionCtx(), testInvoice())
			require.Equal(t, tt.state, out.State)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			_, busy := o.Attempt(7)
			require.False(t, busy, "guard is released")
		})
	}
}

func TestOrchestrator_OrderFailureKeepsBackendMessage(t *testing.T) {
	t.Parallel()

	o, d := newOrchestrator(t)
	d.backend.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		Return(entity.Order{}, &entity.BackendError{StatusCode: 400, Message: "Invoice already settled"}).Times(2)

	_, err := o.Pay(sessionCtx(), testInvoice())
	require.Equal(t, "Invoice already settled", entity.BackendMessage(err))

	_, err = o.Pay(sessionCtx(), testInvoice())
	require.ErrorIs(t, err, entity.ErrNetwork, "a failed attempt can be retried")
}

func TestOrchestrator_Start_Guard(t *testing.T) {
	t.Parallel()

	o, d := newOrchestrator(t)
	release := make(chan struct{})

	d.backend.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(testOrder, nil).Times(1)
	d.widget.EXPECT().Load(gomock.Any()).Return(nil)
	d.widget.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ entity.CheckoutOptions, onOpen func()) (entity.CheckoutResult, error) {
			onOpen()
			<-release

			return entity.DismissedCheckout(), nil
		})

	a, err := o.Start(sessionCtx(), testInvoice())
	require.NoError(t, err)

	<-a.Opened()
	require.Equal(t, checkout.StateWidgetOpen, a.State())
	require.Equal(t, "order_1", a.Options().OrderID)

	_, err = o.Start(sessionCtx(), testInvoice())
	require.ErrorIs(t, err, entity.ErrPaymentInProgress)

	running, busy := o.Attempt(7)
	require.True(t, busy)
	require.Same(t, a, running)

	close(release)
	<-a.Done()

	require.Equal(t, checkout.StateCancelled, a.State())
	require.True(t, a.State().Terminal())
}

func TestOrchestrator_Start_GuardWhileOrderPending(t *testing.T) {
	t.Parallel()

	o, d := newOrchestrator(t)
	entered := make(chan struct{})
	release := make(chan struct{})

	d.backend.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ entity.OrderRequest) (entity.Order, error) {
			close(entered)
			<-release

			return entity.Order{}, entity.ErrNetwork
		}).
		Times(1)

	a, err := o.Start(sessionCtx(), testInvoice())
	require.NoError(t, err)

	<-entered
	require.Equal(t, checkout.StateOrderCreating, a.State())

	for range 3 {
		_, err = o.Start(sessionCtx(), testInvoice())
		require.ErrorIs(t, err, entity.ErrPaymentInProgress)
	}

	close(release)
	<-a.Done()

	require.Equal(t, checkout.StateFailed, a.State())
	require.ErrorIs(t, a.Outcome().Err, entity.ErrNetwork)

	_, busy := o.Attempt(7)
	require.False(t, busy)
}

func TestOrchestrator_Start_RecordsOwner(t *testing.T) {
	t.Parallel()

	o, d := newOrchestrator(t)

	d.backend.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entity.Order{}, entity.ErrNetwork)

	a, err := o.Start(sessionCtx(), testInvoice())
	require.NoError(t, err)
	require.Equal(t, "user-1", a.Owner())

	<-a.Done()
}

func TestOrchestrator_Start_Rejects(t *testing.T) {
	t.Parallel()

	o, _ := newOrchestrator(t)

	paid := testInvoice()
	paid.Status = entity.InvoiceStatusPaid

	_, err := o.Start(sessionCtx(), paid)
	require.ErrorIs(t, err, entity.ErrAlreadyPaid)

	_, err = o.Start(context.Background(), testInvoice())
	require.ErrorIs(t, err, entity.ErrUnauthenticated)
}

func TestOrchestrator_SurvivesCallerCancel(t *testing.T) {
	t.Parallel()

	o, d := newOrchestrator(t)
	resolve := make(chan struct{})

	var verifyCtxErr error

	d.backend.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(testOrder, nil)
	d.widget.EXPECT().Load(gomock.Any()).Return(nil)
	d.widget.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ entity.CheckoutOptions, onOpen func()) (entity.CheckoutResult, error) {
			onOpen()
			<-resolve

			return entity.SucceededCheckout(testSignature), nil
		})
	d.backend.EXPECT().VerifyPayment(gomock.Any(), testSignature).
		DoAndReturn(func(ctx context.Context, _ entity.PaymentSignature) (bool, error) {
			verifyCtxErr = ctx.Err()
			return true, nil
		})
	d.reconciler.EXPECT().Reconcile(gomock.Any(), testSession, int64(7)).Return(entity.ErrNetwork)
	d.publisher.EXPECT().PaymentSettled(gomock.Any(), gomock.Any())

	ctx, cancel := context.WithCancel(sessionCtx())

	a, err := o.Start(ctx, testInvoice())
	require.NoError(t, err)

	<-a.Opened()
	cancel()
	close(resolve)
	<-a.Done()

	out := a.Outcome()
	require.Equal(t, checkout.StateSettled, out.State, "a failed reload does not undo a verified payment")
	require.NoError(t, out.Err)
	require.NoError(t, verifyCtxErr, "verification runs on a context detached from the caller")
}
