package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4/request"

	"github.com/samandr77/microservices/portal/internal/checkout"
	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/internal/invoicedoc"
	"github.com/samandr77/microservices/portal/internal/invoices"
	"github.com/samandr77/microservices/portal/internal/payments"
	"github.com/samandr77/microservices/portal/internal/service"
	"github.com/samandr77/microservices/portal/pkg/money"
)

// @title Tax Portal API
// @version 1.0
// @description Invoices, invoice documents and card checkout of the tax filing portal
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/api.go -package=mocks

type Service interface {
	Login(ctx context.Context, token string, user entity.User) (entity.Session, error)
	Logout(ctx context.Context, token string) error
	Invoices(ctx context.Context, q service.InvoiceQuery) (invoices.View, error)
	InvoicePDF(ctx context.Context, id int64) ([]byte, error)
	InvoicePreview(ctx context.Context, id int64, w io.Writer) error
	StartPayment(ctx context.Context, id int64) (entity.CheckoutOptions, error)
	PaymentState(ctx context.Context, id int64) (checkout.State, bool)
	CompletePayment(ctx context.Context, id int64, res entity.CheckoutResult) (checkout.Outcome, error)
	Payments(ctx context.Context, f payments.Filter, n int) (payments.View, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

type LoginRequest struct {
	User entity.User `json:"user"`
}

type SessionResponse struct {
	User entity.User `json:"user"`
}

// Login stores the session of an externally authenticated user
// @Summary Start session
// @Description Hydrates the portal session for the bearer token issued by the identity provider
// @Tags session
// @Accept json
// @Produce json
// @Param LoginRequest body LoginRequest true "Authenticated user"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 401 {object} ErrorResponse "Token is missing or expired"
// @Failure 422 {object} ErrorResponse "User id is required"
// @Failure 500 {object} ErrorResponse "Failed to store session"
// @Router /session [post]
// @Security BearerAuth
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, err := request.BearerExtractor{}.ExtractToken(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Token is missing or invalid")
		return
	}

	var req LoginRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	sess, err := h.s.Login(ctx, token, req.User)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to store session")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, SessionResponse{User: sess.User})
}

// Logout clears the session
// @Summary End session
// @Tags session
// @Success 204
// @Failure 401 {object} ErrorResponse "Session expired"
// @Failure 500 {object} ErrorResponse "Failed to clear session"
// @Router /session [delete]
// @Security BearerAuth
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.Logout(ctx, entity.TokenFromCtx(ctx))
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to clear session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type InvoiceResponse struct {
	ID             int64  `json:"id"`
	CustomerID     string `json:"customerId"`
	CustomerName   string `json:"customerName"`
	ReturnName     string `json:"returnName"`
	ReturnType     string `json:"returnType"`
	InvoiceAmount  string `json:"invoiceAmount"`
	PlatformFee    string `json:"platformFee"`
	Total          string `json:"total"`
	TotalFormatted string `json:"totalFormatted"`
	Status         string `json:"status"`
	Paid           bool   `json:"paid"`
	CreatedAt      string `json:"createdAt"`
	DueDate        string `json:"dueDate"`
	CreatedByType  string `json:"createdByType"`
}

// InvoiceSummaryResponse is one status card. Percent is of all loaded invoices.
type InvoiceSummaryResponse struct {
	Status          string `json:"status"`
	Count           int    `json:"count"`
	Amount          string `json:"amount"`
	AmountFormatted string `json:"amountFormatted"`
	Percent         int    `json:"percent"`
}

type InvoicesResponse struct {
	Items []InvoiceResponse `json:"items"`
	// Summary ignores the status and search filters.
	Summary    []InvoiceSummaryResponse `json:"summary"`
	Status     string                   `json:"status"`
	Search     string                   `json:"search"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"pageSize"`
	TotalItems int                      `json:"totalItems"`
	TotalPages int                      `json:"totalPages"`
}

// Invoices returns one page of the user's invoices
// @Summary List invoices
// @Description Filters by status (All, Paid, Pending) and free-text search. Changing the filter resets to page 1.
// @Tags invoices
// @Produce json
// @Param status query string false "Status filter"
// @Param search query string false "Search text"
// @Param page query int false "Page number"
// @Param refresh query bool false "Reload from the backend"
// @Success 200 {object} InvoicesResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 401 {object} ErrorResponse "Session expired"
// @Failure 502 {object} ErrorResponse "Error loading invoices"
// @Router /invoices [get]
// @Security BearerAuth
func (h *Handler) Invoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	page, err := intQuery(r, "page", 1)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid page")
		return
	}

	view, err := h.s.Invoices(ctx, service.InvoiceQuery{
		Filter:  invoices.Filter{Status: q.Get("status"), Search: q.Get("search")},
		Page:    page,
		Refresh: q.Get("refresh") == "true" || q.Get("refresh") == "1",
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Error loading invoices. Please try again.")
		return
	}

	items := make([]InvoiceResponse, 0, len(view.Page.Items))
	for _, inv := range view.Page.Items {
		items = append(items, invoiceResponse(inv))
	}

	summary := make([]InvoiceSummaryResponse, 0, len(view.Summary))
	for _, c := range view.Summary {
		summary = append(summary, InvoiceSummaryResponse{
			Status:          c.Status.String(),
			Count:           c.Count,
			Amount:          c.Amount.StringFixed(2),
			AmountFormatted: money.FormatCurrency(c.Amount),
			Percent:         c.Percent,
		})
	}

	SendJSON(ctx, w, http.StatusOK, InvoicesResponse{
		Items:      items,
		Summary:    summary,
		Status:     view.Filter.Status,
		Search:     view.Filter.Search,
		Page:       view.Page.Number,
		PageSize:   view.Page.Size,
		TotalItems: view.Page.TotalItems,
		TotalPages: view.Page.TotalPages,
	})
}

func invoiceResponse(inv entity.Invoice) InvoiceResponse {
	t := inv.Totals()

	return InvoiceResponse{
		ID:             inv.ID,
		CustomerID:     inv.CustomerID,
		CustomerName:   inv.CustomerName,
		ReturnName:     inv.ReturnName,
		ReturnType:     inv.ReturnType,
		InvoiceAmount:  t.Subtotal.StringFixed(2),
		PlatformFee:    t.PlatformFee.StringFixed(2),
		Total:          t.Total.StringFixed(2),
		TotalFormatted: money.FormatCurrency(t.Total),
		Status:         inv.Status.String(),
		Paid:           inv.Status.IsPaid(),
		CreatedAt:      money.FormatTime(inv.CreatedAt),
		DueDate:        money.FormatTime(inv.DueDate),
		CreatedByType:  inv.CreatedByType,
	}
}

// InvoiceDocument downloads the invoice PDF
// @Summary Download invoice
// @Tags invoices
// @Produce application/pdf
// @Param id path int true "Invoice id"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Invalid invoice id"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 500 {object} ErrorResponse "Failed to generate PDF"
// @Router /invoices/{id}/document [get]
// @Security BearerAuth
func (h *Handler) InvoiceDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := invoiceIDParam(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	pdf, err := h.s.InvoicePDF(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to generate PDF. Please try again.")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", invoicedoc.Filename(id)))
	w.WriteHeader(http.StatusOK)

	_, _ = w.Write(pdf)
}

// InvoicePreview renders the invoice as HTML
// @Summary Preview invoice
// @Tags invoices
// @Produce text/html
// @Param id path int true "Invoice id"
// @Success 200 {string} string "HTML document"
// @Failure 400 {object} ErrorResponse "Invalid invoice id"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Router /invoices/{id}/preview [get]
// @Security BearerAuth
func (h *Handler) InvoicePreview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := invoiceIDParam(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	var buf bytes.Buffer

	err = h.s.InvoicePreview(ctx, id, &buf)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to render invoice")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	_, _ = buf.WriteTo(w)
}

type PaymentStartResponse struct {
	InvoiceID int64                  `json:"invoiceId"`
	Options   entity.CheckoutOptions `json:"options"`
}

// StartPayment creates the gateway order and opens the checkout widget
// @Summary Pay invoice
// @Description Returns the options the browser passes to the hosted checkout widget
// @Tags payments
// @Produce json
// @Param id path int true "Invoice id"
// @Success 201 {object} PaymentStartResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 409 {object} ErrorResponse "Already paid or payment in progress"
// @Failure 429 {object} ErrorResponse "Too many payment requests"
// @Failure 502 {object} ErrorResponse "Order creation or gateway load failed"
// @Router /invoices/{id}/payment [post]
// @Security BearerAuth
func (h *Handler) StartPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := invoiceIDParam(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	opts, err := h.s.StartPayment(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to initiate payment. Please try again.")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, PaymentStartResponse{InvoiceID: id, Options: opts})
}

type PaymentStateResponse struct {
	InvoiceID int64  `json:"invoiceId"`
	State     string `json:"state"`
	Busy      bool   `json:"busy"`
}

// PaymentState reports whether a payment is running for the invoice
// @Summary Payment state
// @Tags payments
// @Produce json
// @Param id path int true "Invoice id"
// @Success 200 {object} PaymentStateResponse
// @Failure 400 {object} ErrorResponse "Invalid invoice id"
// @Router /invoices/{id}/payment [get]
// @Security BearerAuth
func (h *Handler) PaymentState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := invoiceIDParam(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	state, busy := h.s.PaymentState(ctx, id)

	SendJSON(ctx, w, http.StatusOK, PaymentStateResponse{InvoiceID: id, State: state.String(), Busy: busy})
}

const (
	resultEventSuccess = "success"
	resultEventDismiss = "dismiss"
)

type PaymentResultRequest struct {
	Event     string `json:"event"`
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

type PaymentResultResponse struct {
	InvoiceID int64  `json:"invoiceId"`
	State     string `json:"state"`
	OrderID   string `json:"orderId,omitempty"`
	PaymentID string `json:"paymentId,omitempty"`
	Message   string `json:"message"`
}

// CompletePayment hands the checkout widget result to the running payment
// @Summary Payment result
// @Description Reports how the checkout widget ended. Waits for verification and returns the final state.
// @Tags payments
// @Accept json
// @Produce json
// @Param id path int true "Invoice id"
// @Param PaymentResultRequest body PaymentResultRequest true "Widget result"
// @Success 200 {object} PaymentResultResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 402 {object} ErrorResponse "Payment verification failed"
// @Failure 409 {object} ErrorResponse "No open checkout"
// @Failure 422 {object} ErrorResponse "Unknown event"
// @Failure 502 {object} ErrorResponse "Backend unreachable"
// @Router /invoices/{id}/payment/result [post]
// @Security BearerAuth
func (h *Handler) CompletePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := invoiceIDParam(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	var req PaymentResultRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	var res entity.CheckoutResult

	switch strings.ToLower(req.Event) {
	case resultEventSuccess:
		if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity,
				errors.New("order id, payment id and signature are required"), "Incomplete payment result")

			return
		}

		res = entity.SucceededCheckout(entity.PaymentSignature{
			OrderID:   req.OrderID,
			PaymentID: req.PaymentID,
			Signature: req.Signature,
		})
	case resultEventDismiss:
		res = entity.DismissedCheckout()
	default:
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, fmt.Errorf("unknown event %q", req.Event), "Unknown payment event")
		return
	}

	out, err := h.s.CompletePayment(ctx, id, res)
	if err != nil {
		sendServiceErr(ctx, w, err, "Payment verification failed. Please contact support.")
		return
	}

	msg := "Payment successful!"
	if out.State == checkout.StateCancelled {
		msg = "Payment cancelled"
	}

	SendJSON(ctx, w, http.StatusOK, PaymentResultResponse{
		InvoiceID: id,
		State:     out.State.String(),
		OrderID:   out.OrderID,
		PaymentID: out.PaymentID,
		Message:   msg,
	})
}

type PaymentResponse struct {
	ID              string `json:"id"`
	TransactionID   string `json:"transactionId"`
	CustomerName    string `json:"customerName"`
	Amount          string `json:"amount"`
	AmountFormatted string `json:"amountFormatted"`
	Method          string `json:"method"`
	Status          string `json:"status"`
	Description     string `json:"description"`
	InvoiceID       string `json:"invoiceId"`
	Date            string `json:"date"`
}

type PaymentTotalsResponse struct {
	Total    string `json:"total"`
	Refunded string `json:"refunded"`
	Count    int    `json:"count"`
}

type PaymentsResponse struct {
	Items      []PaymentResponse     `json:"items"`
	Totals     PaymentTotalsResponse `json:"totals"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"pageSize"`
	TotalItems int                   `json:"totalItems"`
	TotalPages int                   `json:"totalPages"`
}

// Payments returns one page of the user's payment history
// @Summary Payment history
// @Tags payments
// @Produce json
// @Param status query string false "Exact status, All for any"
// @Param search query string false "Search text"
// @Param days query int false "Only payments of the last N days, at most 36500"
// @Param page query int false "Page number"
// @Success 200 {object} PaymentsResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 502 {object} ErrorResponse "Error loading payments"
// @Router /payments [get]
// @Security BearerAuth
func (h *Handler) Payments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	page, err := intQuery(r, "page", 1)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid page")
		return
	}

	days, err := intQuery(r, "days", 0)
	if err != nil || days < 0 || days > payments.MaxDays {
		SendJSONErr(ctx, w, http.StatusBadRequest, fmt.Errorf("invalid days %q", q.Get("days")), "Invalid period")
		return
	}

	view, err := h.s.Payments(ctx, payments.Filter{Search: q.Get("search"), Status: q.Get("status"), Days: days}, page)
	if err != nil {
		sendServiceErr(ctx, w, err, "Error loading payments. Please try again.")
		return
	}

	items := make([]PaymentResponse, 0, len(view.Page.Items))
	for _, p := range view.Page.Items {
		items = append(items, PaymentResponse{
			ID:              p.ID,
			TransactionID:   p.TransactionID,
			CustomerName:    p.CustomerName,
			Amount:          p.Amount.StringFixed(2),
			AmountFormatted: money.FormatCurrency(p.Amount),
			Method:          p.Method,
			Status:          p.Status.String(),
			Description:     p.Description,
			InvoiceID:       p.InvoiceID,
			Date:            money.FormatTime(p.CreatedAt),
		})
	}

	SendJSON(ctx, w, http.StatusOK, PaymentsResponse{
		Items: items,
		Totals: PaymentTotalsResponse{
			Total:    money.FormatCurrency(view.Totals.Total),
			Refunded: money.FormatCurrency(view.Totals.Refunded),
			Count:    view.Totals.Count,
		},
		Page:       view.Page.Number,
		PageSize:   view.Page.Size,
		TotalItems: view.Page.TotalItems,
		TotalPages: view.Page.TotalPages,
	})
}

// HealthHandler - returns service health status.
// @Summary Health check
// @Description Health check
// @Tags health
// @Accept text/plain
// @Produce text/plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Service unavailable")
		return
	}
}
