package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const CurrencyUSD = "USD"

type OrderNotes struct {
	InvoiceID    int64  `json:"invoice_id"`
	CustomerName string `json:"customer_name"`
}

type OrderRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Receipt       string          `json:"receipt"`
	Notes         OrderNotes      `json:"notes"`
	InvoiceID     int64           `json:"invoice_id"`
	CreatedByType string          `json:"createdby_type"`
	CreatedByID   string          `json:"createdby_id"`
}

// Order is the gateway handle returned by the backend. Amount is in minor units.
type Order struct {
	ID       string
	Amount   decimal.Decimal
	Currency string
}

type CheckoutPrefill struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CheckoutTheme struct {
	Color string `json:"color"`
}

type CheckoutMethods struct {
	Card       bool `json:"card"`
	Netbanking bool `json:"netbanking"`
	Wallet     bool `json:"wallet"`
	UPI        bool `json:"upi"`
	EMI        bool `json:"emi"`
}

// CheckoutOptions is the configuration object handed to the hosted checkout widget.
type CheckoutOptions struct {
	Key         string          `json:"key"`
	Amount      int64           `json:"amount"`
	Currency    string          `json:"currency"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	OrderID     string          `json:"order_id"`
	Prefill     CheckoutPrefill `json:"prefill"`
	Theme       CheckoutTheme   `json:"theme"`
	Method      CheckoutMethods `json:"method"`
	Notes       OrderNotes      `json:"notes"`
}

type CheckoutResultKind string

const (
	CheckoutSucceeded CheckoutResultKind = "success"
	CheckoutDismissed CheckoutResultKind = "dismissed"
)

// PaymentSignature is the signed payload the widget reports on success.
type PaymentSignature struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// CheckoutResult is how a checkout widget session ended.
type CheckoutResult struct {
	Kind      CheckoutResultKind
	Signature PaymentSignature
}

func DismissedCheckout() CheckoutResult {
	return CheckoutResult{Kind: CheckoutDismissed}
}

func SucceededCheckout(sig PaymentSignature) CheckoutResult {
	return CheckoutResult{Kind: CheckoutSucceeded, Signature: sig}
}

type PaymentSettledEvent struct {
	InvoiceID  int64           `json:"invoice_id"`
	CustomerID string          `json:"customer_id"`
	OrderID    string          `json:"order_id"`
	PaymentID  string          `json:"payment_id"`
	Amount     decimal.Decimal `json:"amount"`
	SettledAt  time.Time       `json:"settled_at"`
}
