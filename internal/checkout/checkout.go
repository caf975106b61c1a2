// Package checkout drives one invoice through order creation, the hosted
// checkout widget and payment verification.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=checkout.go -destination=../mocks/checkout.go -package=mocks

type Backend interface {
	CreateOrder(ctx context.Context, req entity.OrderRequest) (entity.Order, error)
	VerifyPayment(ctx context.Context, sig entity.PaymentSignature) (bool, error)
}

// Widget is the hosted checkout UI. Open must call onOpen once the widget is
// ready to receive a result and then block until the user finishes.
type Widget interface {
	Load(ctx context.Context) error
	Open(ctx context.Context, opts entity.CheckoutOptions, onOpen func()) (entity.CheckoutResult, error)
}

type Reconciler interface {
	Reconcile(ctx context.Context, sess entity.Session, invoiceID int64) error
}

type Publisher interface {
	PaymentSettled(ctx context.Context, e entity.PaymentSettledEvent)
}

type Config struct {
	KeyID      string
	Name       string
	ThemeColor string
}

type Orchestrator struct {
	cfg        Config
	backend    Backend
	widget     Widget
	reconciler Reconciler
	publisher  Publisher
	now        func() time.Time

	mu       sync.Mutex
	attempts map[int64]*Attempt
}

func New(cfg Config, backend Backend, widget Widget, reconciler Reconciler, publisher Publisher) *Orchestrator {
	return &Orchestrator{
		cfg:        cfg,
		backend:    backend,
		widget:     widget,
		reconciler: reconciler,
		publisher:  publisher,
		now:        time.Now,
		attempts:   make(map[int64]*Attempt),
	}
}

// Start begins paying inv on behalf of the session user in ctx. The flow keeps
// running after ctx is cancelled. Only one attempt per invoice may run at a time.
func (o *Orchestrator) Start(ctx context.Context, inv entity.Invoice) (*Attempt, error) {
	sess, err := entity.SessionFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if inv.Status.IsPaid() {
		return nil, fmt.Errorf("invoice %d: %w", inv.ID, entity.ErrAlreadyPaid)
	}

	o.mu.Lock()
	if _, busy := o.attempts[inv.ID]; busy {
		o.mu.Unlock()
		return nil, fmt.Errorf("invoice %d: %w", inv.ID, entity.ErrPaymentInProgress)
	}

	a := newAttempt(inv, sess.User.ID)
	o.attempts[inv.ID] = a
	o.mu.Unlock()

	ctx = logger.WithInvoiceID(context.WithoutCancel(ctx), inv.ID)

	go o.run(ctx, a, sess)

	return a, nil
}

// Pay runs a whole attempt and waits for it to end.
func (o *Orchestrator) Pay(ctx context.Context, inv entity.Invoice) (Outcome, error) {
	a, err := o.Start(ctx, inv)
	if err != nil {
		return Outcome{}, err
	}

	select {
	case <-a.Done():
		out := a.Outcome()
		return out, out.Err
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

// Attempt returns the running attempt for invoiceID.
func (o *Orchestrator) Attempt(invoiceID int64) (*Attempt, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	a, ok := o.attempts[invoiceID]

	return a, ok
}

func (o *Orchestrator) run(ctx context.Context, a *Attempt, sess entity.Session) {
	out := o.process(ctx, a, sess)
	out.InvoiceID = a.InvoiceID()

	o.mu.Lock()
	if o.attempts[a.InvoiceID()] == a {
		delete(o.attempts, a.InvoiceID())
	}
	o.mu.Unlock()

	switch out.State {
	case StateFailed:
		slog.ErrorContext(ctx, "checkout failed", "error", out.Err)
	case StateCancelled:
		slog.InfoContext(ctx, "checkout cancelled", "order_id", out.OrderID)
	default:
		slog.InfoContext(ctx, "checkout settled", "order_id", out.OrderID, "payment_id", out.PaymentID)
	}

	a.finish(out)
}

func (o *Orchestrator) process(ctx context.Context, a *Attempt, sess entity.Session) Outcome {
	inv, user := a.invoice, sess.User

	a.setState(StateOrderCreating)

	order, err := o.backend.CreateOrder(ctx, o.orderRequest(inv, user))
	if err != nil {
		return failed(fmt.Errorf("create order: %w", err))
	}

	a.setState(StateWidgetLoading)

	err = o.widget.Load(ctx)
	if err != nil {
		if !errors.Is(err, entity.ErrGatewayLoad) {
			err = fmt.Errorf("%w: %w", entity.ErrGatewayLoad, err)
		}

		return Outcome{State: StateFailed, OrderID: order.ID, Err: err}
	}

	opts := o.options(inv, order, user)

	res, err := o.widget.Open(ctx, opts, func() { a.open(opts) })
	if err != nil {
		return Outcome{State: StateFailed, OrderID: order.ID, Err: fmt.Errorf("checkout widget: %w", err)}
	}

	switch res.Kind {
	case entity.CheckoutDismissed:
		return Outcome{State: StateCancelled, OrderID: order.ID}
	case entity.CheckoutSucceeded:
	default:
		return Outcome{
			State:   StateFailed,
			OrderID: order.ID,
			Err:     fmt.Errorf("%w: unknown checkout result %q", entity.ErrValidation, res.Kind),
		}
	}

	a.setState(StateVerifying)

	ok, err := o.backend.VerifyPayment(ctx, res.Signature)
	if err != nil {
		return Outcome{State: StateFailed, OrderID: order.ID, Err: fmt.Errorf("%w: %w", entity.ErrVerification, err)}
	}

	if !ok {
		return Outcome{
			State:   StateFailed,
			OrderID: order.ID,
			Err:     fmt.Errorf("%w: payment %s rejected", entity.ErrVerification, res.Signature.PaymentID),
		}
	}

	err = o.reconciler.Reconcile(ctx, sess, inv.ID)
	if err != nil {
		slog.WarnContext(ctx, "reload after payment failed", "error", err)
	}

	o.publisher.PaymentSettled(ctx, entity.PaymentSettledEvent{
		InvoiceID:  inv.ID,
		CustomerID: inv.CustomerID,
		OrderID:    order.ID,
		PaymentID:  res.Signature.PaymentID,
		Amount:     inv.Amount,
		SettledAt:  o.now(),
	})

	return Outcome{State: StateSettled, OrderID: order.ID, PaymentID: res.Signature.PaymentID}
}

func failed(err error) Outcome {
	return Outcome{State: StateFailed, Err: err}
}

func (o *Orchestrator) orderRequest(inv entity.Invoice, user entity.User) entity.OrderRequest {
	return entity.OrderRequest{
		Amount:   inv.Amount,
		Currency: entity.CurrencyUSD,
		Receipt:  fmt.Sprintf("rcpt_%d", o.now().UnixMilli()),
		Notes: entity.OrderNotes{
			InvoiceID:    inv.ID,
			CustomerName: inv.CustomerName,
		},
		InvoiceID:     inv.ID,
		CreatedByType: user.Role,
		CreatedByID:   user.ID,
	}
}

// options builds the widget configuration. The order amount is already in
// minor units and is passed through as is.
func (o *Orchestrator) options(inv entity.Invoice, order entity.Order, user entity.User) entity.CheckoutOptions {
	return entity.CheckoutOptions{
		Key:         o.cfg.KeyID,
		Amount:      order.Amount.IntPart(),
		Currency:    order.Currency,
		Name:        o.cfg.Name,
		Description: fmt.Sprintf("Payment for Invoice %d", inv.ID),
		OrderID:     order.ID,
		Prefill: entity.CheckoutPrefill{
			Name:  user.Name,
			Email: user.Email,
		},
		Theme:  entity.CheckoutTheme{Color: o.cfg.ThemeColor},
		Method: entity.CheckoutMethods{Card: true},
		Notes: entity.OrderNotes{
			InvoiceID:    inv.ID,
			CustomerName: inv.CustomerName,
		},
	}
}
