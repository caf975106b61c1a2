package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/samandr77/microservices/portal/internal/entity"
)

type ErrorResponse struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	desc := ""
	if originErr != nil {
		desc = originErr.Error()
	}

	slog.ErrorContext(ctx, "api error", "error", desc, "status", code)
	SendJSON(ctx, w, code, ErrorResponse{Message: msgToSend, Description: desc})
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// sendServiceErr maps the error taxonomy to HTTP. fallback is shown for
// backend failures that carry no message of their own.
func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, entity.ErrUnauthenticated):
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Session expired, please log in again")
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Invoice not found")
	case errors.Is(err, entity.ErrPaymentInProgress):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Payment already in progress")
	case errors.Is(err, entity.ErrAlreadyPaid):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Invoice is already paid")
	case errors.Is(err, entity.ErrNoCheckout):
		SendJSONErr(ctx, w, http.StatusConflict, err, "No open checkout for this invoice")
	case errors.Is(err, entity.ErrGatewayLoad):
		SendJSONErr(ctx, w, http.StatusBadGateway, err, "Failed to load payment processor")
	case errors.Is(err, entity.ErrVerification):
		SendJSONErr(ctx, w, http.StatusPaymentRequired, err, "Payment verification failed")
	case errors.Is(err, entity.ErrValidation):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid request")
	case errors.Is(err, entity.ErrRender):
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to generate PDF. Please try again.")
	case errors.Is(err, entity.ErrNetwork):
		msg := entity.BackendMessage(err)
		if msg == "" {
			msg = fallback
		}

		SendJSONErr(ctx, w, http.StatusBadGateway, err, msg)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		SendJSONErr(ctx, w, http.StatusGatewayTimeout, err, "Request timed out")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, fallback)
	}
}

func invoiceIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invoice id must be a positive integer")
	}

	return id, nil
}

// intQuery returns the query parameter name or def when it is absent.
func intQuery(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}

	return n, nil
}
