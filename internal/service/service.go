package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/samandr77/microservices/portal/internal/checkout"
	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/internal/invoicedoc"
	"github.com/samandr77/microservices/portal/internal/invoices"
	"github.com/samandr77/microservices/portal/internal/payments"
	"github.com/samandr77/microservices/portal/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type SessionStore interface {
	Save(ctx context.Context, token string, user entity.User) (entity.Session, error)
	Hydrate(ctx context.Context, token string) (entity.Session, error)
	Clear(ctx context.Context, token string) error
}

type Checkout interface {
	Start(ctx context.Context, inv entity.Invoice) (*checkout.Attempt, error)
	Attempt(invoiceID int64) (*checkout.Attempt, bool)
}

type WidgetResolver interface {
	Resolve(invoiceID int64, res entity.CheckoutResult) error
}

type PaymentHistory interface {
	Query(ctx context.Context, customerID string, f payments.Filter, n int) (payments.View, error)
}

type Archiver interface {
	PutInvoice(ctx context.Context, customerID string, invoiceID int64, pdf []byte) (string, error)
}

type Service struct {
	sessions SessionStore
	lists    *invoices.Registry
	renderer *invoicedoc.Renderer
	checkout Checkout
	widget   WidgetResolver
	history  PaymentHistory
	archive  Archiver
}

// New builds the portal service. archive may be nil.
func New(
	sessions SessionStore,
	lists *invoices.Registry,
	renderer *invoicedoc.Renderer,
	co Checkout,
	widget WidgetResolver,
	history PaymentHistory,
	archive Archiver,
) *Service {
	return &Service{
		sessions: sessions,
		lists:    lists,
		renderer: renderer,
		checkout: co,
		widget:   widget,
		history:  history,
		archive:  archive,
	}
}

func (s *Service) Login(ctx context.Context, token string, user entity.User) (entity.Session, error) {
	sess, err := s.sessions.Save(ctx, token, user)
	if err != nil {
		return entity.Session{}, fmt.Errorf("save session: %w", err)
	}

	slog.InfoContext(logger.WithUserID(ctx, user.ID), "session started")

	return sess, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	err := s.sessions.Clear(ctx, token)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

func (s *Service) Authenticate(ctx context.Context, token string) (entity.Session, error) {
	return s.sessions.Hydrate(ctx, token)
}

type InvoiceQuery struct {
	Filter  invoices.Filter
	Page    int
	Refresh bool
}

// Invoices returns one page of the session user's invoices. The list is
// loaded on first use and whenever Refresh is set.
func (s *Service) Invoices(ctx context.Context, q InvoiceQuery) (invoices.View, error) {
	l, err := s.list(ctx, q.Refresh)
	if err != nil {
		return invoices.View{}, err
	}

	return l.Query(q.Filter, q.Page), nil
}

func (s *Service) Invoice(ctx context.Context, id int64) (entity.Invoice, error) {
	l, err := s.list(ctx, false)
	if err != nil {
		return entity.Invoice{}, err
	}

	return l.Invoice(id)
}

func (s *Service) list(ctx context.Context, refresh bool) (*invoices.List, error) {
	sess, err := entity.SessionFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	l := s.lists.List(sess)

	if refresh || !l.Loaded() {
		err = l.Load(ctx)
		if err != nil {
			return nil, err
		}
	}

	return l, nil
}

// InvoicePDF renders the invoice document. The rendered file is archived when
// an archive is configured; archive failures do not fail the download.
func (s *Service) InvoicePDF(ctx context.Context, id int64) ([]byte, error) {
	inv, err := s.Invoice(ctx, id)
	if err != nil {
		return nil, err
	}

	doc, err := invoicedoc.Build(inv)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	err = s.renderer.WritePDF(&buf, doc)
	if err != nil {
		return nil, err
	}

	if s.archive != nil {
		key, err := s.archive.PutInvoice(ctx, inv.CustomerID, inv.ID, buf.Bytes())
		if err != nil {
			slog.WarnContext(ctx, "archive invoice", "invoice_id", inv.ID, "error", err)
		} else {
			slog.DebugContext(ctx, "invoice archived", "key", key)
		}
	}

	return buf.Bytes(), nil
}

func (s *Service) InvoicePreview(ctx context.Context, id int64, w io.Writer) error {
	inv, err := s.Invoice(ctx, id)
	if err != nil {
		return err
	}

	doc, err := invoicedoc.Build(inv)
	if err != nil {
		return err
	}

	return s.renderer.WriteHTML(w, doc)
}

// StartPayment starts the checkout of invoice id and returns the widget
// options once the widget is waiting for the browser.
func (s *Service) StartPayment(ctx context.Context, id int64) (entity.CheckoutOptions, error) {
	ctx = logger.WithInvoiceID(ctx, id)

	inv, err := s.Invoice(ctx, id)
	if err != nil {
		return entity.CheckoutOptions{}, err
	}

	a, err := s.checkout.Start(ctx, inv)
	if err != nil {
		return entity.CheckoutOptions{}, fmt.Errorf("start checkout: %w", err)
	}

	select {
	case <-a.Opened():
		return a.Options(), nil
	case <-a.Done():
		out := a.Outcome()
		if out.Err != nil {
			return entity.CheckoutOptions{}, out.Err
		}

		return entity.CheckoutOptions{}, fmt.Errorf("checkout ended as %s: %w", out.State, entity.ErrNoCheckout)
	case <-ctx.Done():
		return entity.CheckoutOptions{}, ctx.Err()
	}
}

// PaymentState reports the state of the running attempt for id, if the
// session user started it.
func (s *Service) PaymentState(ctx context.Context, id int64) (checkout.State, bool) {
	a, ok := s.attempt(ctx, id)
	if !ok {
		return checkout.StateIdle, false
	}

	return a.State(), true
}

// attempt returns the running attempt for id only to the user who started it.
func (s *Service) attempt(ctx context.Context, id int64) (*checkout.Attempt, bool) {
	sess, err := entity.SessionFromCtx(ctx)
	if err != nil {
		return nil, false
	}

	a, ok := s.checkout.Attempt(id)
	if !ok || a.Owner() != sess.User.ID {
		return nil, false
	}

	return a, true
}

// CompletePayment hands the widget result to the running attempt and waits for its outcome.
func (s *Service) CompletePayment(ctx context.Context, id int64, res entity.CheckoutResult) (checkout.Outcome, error) {
	ctx = logger.WithInvoiceID(ctx, id)

	a, ok := s.attempt(ctx, id)
	if !ok {
		return checkout.Outcome{}, fmt.Errorf("invoice %d: %w", id, entity.ErrNoCheckout)
	}

	err := s.widget.Resolve(id, res)
	if err != nil {
		return checkout.Outcome{}, err
	}

	select {
	case <-a.Done():
		out := a.Outcome()
		return out, out.Err
	case <-ctx.Done():
		return checkout.Outcome{}, ctx.Err()
	}
}

func (s *Service) Payments(ctx context.Context, f payments.Filter, n int) (payments.View, error) {
	sess, err := entity.SessionFromCtx(ctx)
	if err != nil {
		return payments.View{}, err
	}

	return s.history.Query(ctx, sess.User.ID, f, n)
}
