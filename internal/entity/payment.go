package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

func (s PaymentStatus) String() string {
	return string(s)
}

// MapGatewayPaymentStatus translates the gateway vocabulary into portal statuses.
// Unknown values pass through unchanged.
func MapGatewayPaymentStatus(status string) PaymentStatus {
	switch status {
	case "created", "authorized":
		return PaymentStatusPending
	case "captured":
		return PaymentStatusPaid
	case "failed":
		return PaymentStatusFailed
	default:
		return PaymentStatus(status)
	}
}

const (
	PaymentMethodCard   = "Credit Card"
	UnknownCustomerName = "Unknown Customer"
)

type Payment struct {
	ID            string
	TransactionID string
	CustomerID    string
	CustomerName  string
	Amount        decimal.Decimal
	Method        string
	Status        PaymentStatus
	Description   string
	InvoiceID     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
