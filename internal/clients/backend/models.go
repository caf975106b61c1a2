package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/pkg/money"
)

const verifyStatusOK = "ok"

type errorResponse struct {
	Message string `json:"message"`
}

type orderResponse struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type verifyResponse struct {
	Status string `json:"status"`
}

// textID is an identifier the backend sends either as a string or as a number.
type textID string

func (t *textID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string

		err := json.Unmarshal(b, &s)
		*t = textID(s)

		return err
	}

	var n json.Number

	err := json.Unmarshal(b, &n)
	*t = textID(n.String())

	return err
}

// lenientAmount decodes strings and numbers; anything unparsable is zero.
type lenientAmount struct {
	decimal.Decimal
}

func (a *lenientAmount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)

	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}

	a.Decimal = d

	return nil
}

type invoiceResponse struct {
	ID            int64           `json:"id"`
	CustomerID    textID          `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	TaxName       string          `json:"tax_name"`
	InvoiceAmount decimal.Decimal `json:"invoice_amount"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"created_at"`
	DueDate       string          `json:"due_date"`
	CreatedByType string          `json:"createdby_type"`
}

func (r invoiceResponse) toEntity(ctx context.Context) entity.Invoice {
	return entity.Invoice{
		ID:            r.ID,
		CustomerID:    string(r.CustomerID),
		CustomerName:  r.CustomerName,
		ReturnName:    r.TaxName,
		ReturnType:    entity.ReturnTypeTaxReturn,
		Amount:        r.InvoiceAmount,
		Status:        entity.NormalizeInvoiceStatus(r.Status),
		CreatedAt:     parseTime(ctx, "created_at", r.CreatedAt),
		DueDate:       parseTime(ctx, "due_date", r.DueDate),
		CreatedByType: r.CreatedByType,
	}
}

type paymentResponse struct {
	ID             textID         `json:"id"`
	TransactionID  string         `json:"transaction_id"`
	CreatedByID    textID         `json:"createdby_id"`
	PaymentPayload paymentPayload `json:"payment_payload"`
	PaidAmount     lenientAmount  `json:"paid_amount"`
	Type           string         `json:"transaction_type"`
	Status         string         `json:"payment_status"`
	InvoiceID      textID         `json:"invoice_id"`
	CreatedAt      string         `json:"created_at"`
	ModifiedAt     string         `json:"modified_at"`
}

type paymentPayload struct {
	Notes struct {
		CustomerName string `json:"customer_name"`
	} `json:"notes"`
}

func (r paymentResponse) toEntity(ctx context.Context) entity.Payment {
	name := r.PaymentPayload.Notes.CustomerName
	if name == "" {
		name = entity.UnknownCustomerName
	}

	method := r.Type
	if method == "card" {
		method = entity.PaymentMethodCard
	}

	return entity.Payment{
		ID:            string(r.ID),
		TransactionID: r.TransactionID,
		CustomerID:    string(r.CreatedByID),
		CustomerName:  name,
		Amount:        r.PaidAmount.Decimal,
		Method:        method,
		Status:        entity.MapGatewayPaymentStatus(r.Status),
		Description:   "Invoice #" + string(r.InvoiceID),
		InvoiceID:     string(r.InvoiceID),
		CreatedAt:     parseTime(ctx, "created_at", r.CreatedAt),
		UpdatedAt:     parseTime(ctx, "modified_at", r.ModifiedAt),
	}
}

func parseTime(ctx context.Context, field, value string) time.Time {
	if value == "" {
		return time.Time{}
	}

	t, err := money.ParseTimestamp(value)
	if err != nil {
		slog.WarnContext(ctx, "backend sent unparsable timestamp", "field", field, "error", err)
		return time.Time{}
	}

	return t
}
