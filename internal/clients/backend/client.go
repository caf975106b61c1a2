// Package backend is the client of the tax backend REST API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/pkg/config"
	"github.com/samandr77/microservices/portal/pkg/transport"
)

const (
	retryWaitMin = 200 * time.Millisecond
	retryWaitMax = 2 * time.Second
)

type Client struct {
	baseURL string
	get     *retryablehttp.Client
	post    *http.Client
}

func NewClient(cfg config.Backend) *Client {
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	rt := transport.NewRequestIDRoundTripper(transport.NewRateLimitRoundTripper(http.DefaultTransport, limiter))

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryMax
	retryClient.RetryWaitMin = retryWaitMin
	retryClient.RetryWaitMax = retryWaitMax
	retryClient.HTTPClient = &http.Client{Timeout: cfg.Timeout, Transport: rt}

	retryClient.Logger = nil

	// Only transport failures are retried; any answer of the backend is final.
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	return &Client{
		baseURL: cfg.BaseURL,
		get:     retryClient,
		post:    &http.Client{Timeout: cfg.Timeout, Transport: rt},
	}
}

func (c *Client) Invoices(ctx context.Context, customerID string) ([]entity.Invoice, error) {
	var resp []invoiceResponse

	err := c.getJSON(ctx, "/api/getInvoices/"+url.PathEscape(customerID), &resp)
	if err != nil {
		return nil, fmt.Errorf("get invoices: %w", err)
	}

	invoices := make([]entity.Invoice, 0, len(resp))
	for _, r := range resp {
		invoices = append(invoices, r.toEntity(ctx))
	}

	return invoices, nil
}

func (c *Client) Payments(ctx context.Context, customerID string) ([]entity.Payment, error) {
	var resp []paymentResponse

	err := c.getJSON(ctx, "/api/getPayments/"+url.PathEscape(customerID), &resp)
	if err != nil {
		return nil, fmt.Errorf("get payments: %w", err)
	}

	payments := make([]entity.Payment, 0, len(resp))
	for _, r := range resp {
		payments = append(payments, r.toEntity(ctx))
	}

	return payments, nil
}

func (c *Client) CreateOrder(ctx context.Context, req entity.OrderRequest) (entity.Order, error) {
	var resp orderResponse

	err := c.postJSON(ctx, "/api/create-order", req, &resp)
	if err != nil {
		return entity.Order{}, fmt.Errorf("create order: %w", err)
	}

	return entity.Order{
		ID:       resp.ID,
		Amount:   resp.Amount,
		Currency: resp.Currency,
	}, nil
}

// VerifyPayment asks the backend to check the gateway signature. It reports
// false when the backend answered without status "ok".
func (c *Client) VerifyPayment(ctx context.Context, sig entity.PaymentSignature) (bool, error) {
	var resp verifyResponse

	err := c.postJSON(ctx, "/api/verify-payment", sig, &resp)
	if err != nil {
		return false, fmt.Errorf("verify payment: %w", err)
	}

	return resp.Status == verifyStatusOK, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	setHeaders(ctx, req.Header)

	resp, err := c.get.Do(req)
	if err != nil {
		return fmt.Errorf("%w: do request: %w", entity.ErrNetwork, err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	setHeaders(ctx, req.Header)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.post.Do(req)
	if err != nil {
		return fmt.Errorf("%w: do request: %w", entity.ErrNetwork, err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func setHeaders(ctx context.Context, h http.Header) {
	h.Set("Accept", "application/json")

	if token := entity.TokenFromCtx(ctx); token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
}

func decodeResponse(resp *http.Response, out any) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %w", entity.ErrNetwork, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var e errorResponse
		_ = json.Unmarshal(body, &e)

		return &entity.BackendError{StatusCode: resp.StatusCode, Message: e.Message}
	}

	err = json.Unmarshal(body, out)
	if err != nil {
		return fmt.Errorf("%w: unmarshal response: %w", entity.ErrNetwork, err)
	}

	return nil
}
