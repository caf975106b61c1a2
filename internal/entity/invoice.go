package entity

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "Pending"
	InvoiceStatusPaid    InvoiceStatus = "Paid"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) IsPaid() bool {
	return strings.EqualFold(string(s), string(InvoiceStatusPaid))
}

// NormalizeInvoiceStatus upper-cases the first letter of a backend status and keeps the rest as is.
func NormalizeInvoiceStatus(raw string) InvoiceStatus {
	if raw == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(raw)

	return InvoiceStatus(string(unicode.ToUpper(r)) + raw[size:])
}

// ReturnTypeTaxReturn is the only billed service type the backend emits.
const ReturnTypeTaxReturn = "Tax Return"

// PlatformFee is added on top of every invoice amount. It is not part of Invoice.Amount.
var PlatformFee = decimal.RequireFromString("19.00")

type Invoice struct {
	ID            int64
	CustomerID    string
	CustomerName  string
	ReturnName    string
	ReturnType    string
	Amount        decimal.Decimal
	Status        InvoiceStatus
	CreatedAt     time.Time
	DueDate       time.Time
	CreatedByType string
}

type InvoiceTotals struct {
	Subtotal    decimal.Decimal
	PlatformFee decimal.Decimal
	Total       decimal.Decimal
}

// Totals is the only place the payable total is computed. The amount is
// rounded to cents once; every printed figure and the words derive from it.
func (i Invoice) Totals() InvoiceTotals {
	subtotal := i.Amount.Round(2)

	return InvoiceTotals{
		Subtotal:    subtotal,
		PlatformFee: PlatformFee,
		Total:       subtotal.Add(PlatformFee),
	}
}
