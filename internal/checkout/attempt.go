package checkout

import (
	"sync"

	"github.com/samandr77/microservices/portal/internal/entity"
)

type State string

const (
	StateIdle          State = "idle"
	StateOrderCreating State = "order_creating"
	StateWidgetLoading State = "widget_loading"
	StateWidgetOpen    State = "widget_open"
	StateVerifying     State = "verifying"
	StateSettled       State = "settled"
	StateFailed        State = "failed"
	StateCancelled     State = "cancelled"
)

func (s State) String() string {
	return string(s)
}

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s == StateSettled || s == StateFailed || s == StateCancelled
}

// Outcome is how an attempt ended. Err is set only for StateFailed.
type Outcome struct {
	State     State
	InvoiceID int64
	OrderID   string
	PaymentID string
	Err       error
}

// Attempt is one run of the checkout flow for one invoice.
type Attempt struct {
	invoice entity.Invoice
	owner   string

	mu      sync.RWMutex
	state   State
	options entity.CheckoutOptions
	outcome Outcome

	opened     chan struct{}
	openedOnce sync.Once
	done       chan struct{}
}

func newAttempt(inv entity.Invoice, owner string) *Attempt {
	return &Attempt{
		invoice: inv,
		owner:   owner,
		state:   StateIdle,
		opened:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (a *Attempt) InvoiceID() int64 {
	return a.invoice.ID
}

// Owner is the id of the user who started the attempt.
func (a *Attempt) Owner() string {
	return a.owner
}

func (a *Attempt) State() State {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.state
}

// Opened is closed once the widget is showing. It is never closed if the
// attempt fails before that; use Done to observe those.
func (a *Attempt) Opened() <-chan struct{} {
	return a.opened
}

// Options returns the widget options once Opened is closed.
func (a *Attempt) Options() entity.CheckoutOptions {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.options
}

func (a *Attempt) Done() <-chan struct{} {
	return a.done
}

// Outcome is meaningful after Done is closed.
func (a *Attempt) Outcome() Outcome {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.outcome
}

func (a *Attempt) setState(s State) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state = s
}

func (a *Attempt) open(opts entity.CheckoutOptions) {
	a.mu.Lock()
	a.state = StateWidgetOpen
	a.options = opts
	a.mu.Unlock()

	a.openedOnce.Do(func() { close(a.opened) })
}

func (a *Attempt) finish(o Outcome) {
	a.mu.Lock()
	a.state = o.State
	a.outcome = o
	a.mu.Unlock()

	close(a.done)
}
