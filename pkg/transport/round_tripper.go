package transport

import (
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/samandr77/microservices/portal/pkg/logger"
)

// RequestIDRoundTripper forwards the request id and logs every outgoing call.
type RequestIDRoundTripper struct {
	Transport http.RoundTripper
}

func NewRequestIDRoundTripper(transport http.RoundTripper) *RequestIDRoundTripper {
	return &RequestIDRoundTripper{Transport: transport}
}

func (j *RequestIDRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	slog.InfoContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	resp, err := j.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response",
		"response", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()),
		"status", resp.StatusCode,
	)

	return resp, nil
}

// RateLimitRoundTripper blocks until the limiter admits the request or the request context ends.
type RateLimitRoundTripper struct {
	Transport http.RoundTripper
	Limiter   *rate.Limiter
}

func NewRateLimitRoundTripper(transport http.RoundTripper, limiter *rate.Limiter) *RateLimitRoundTripper {
	return &RateLimitRoundTripper{Transport: transport, Limiter: limiter}
}

func (l *RateLimitRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	err := l.Limiter.Wait(r.Context())
	if err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	return l.Transport.RoundTrip(r)
}
