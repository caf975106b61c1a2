package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v4/request"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/pkg/logger"
)

var skipLogging = map[string]struct{}{
	"/api/health": {},
}

//go:generate go run go.uber.org/mock/mockgen@latest -source=middlewares.go -destination=../mocks/middlewares.go -package=mocks

type AuthService interface {
	Authenticate(ctx context.Context, token string) (entity.Session, error)
}

type Middleware struct {
	auth AuthService
	cors *cors.Cors

	paymentRPS   rate.Limit
	paymentBurst int

	now      func() time.Time
	mu       sync.Mutex
	limiters map[string]*userLimiter
}

type userLimiter struct {
	*rate.Limiter
	lastSeen time.Time
}

func NewMiddleware(auth AuthService, allowedOrigins []string, paymentRPS float64, paymentBurst int) *Middleware {
	return &Middleware{
		auth: auth,
		cors: cors.New(cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Content-Type", "Authorization", "Accept", "X-Request-Id"},
			ExposedHeaders:   []string{"X-Request-Id", "Content-Disposition"},
			AllowCredentials: true,
		}),
		paymentRPS:   rate.Limit(paymentRPS),
		paymentBurst: paymentBurst,
		now:          time.Now,
		limiters:     make(map[string]*userLimiter),
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx = logger.WithRequestID(ctx, requestID)
		w.Header().Set("X-Request-Id", requestID)

		if _, ok := skipLogging[r.URL.Path]; !ok {
			reqBody, err := io.ReadAll(r.Body)
			if err != nil {
				SendJSONErr(ctx, w, http.StatusInternalServerError, err, "read request body")
				return
			}

			r.Body.Close()
			r.Body = io.NopCloser(bytes.NewBuffer(reqBody))

			var headers strings.Builder

			for k, v := range r.Header {
				if k == "Authorization" || k == "Cookie" {
					continue
				}

				headers.WriteString(fmt.Sprintf("%s: %s,\n", k, v))
			}

			slog.InfoContext(ctx, "incoming request",
				"request", fmt.Sprintf("%s %s\n%s", r.Method, r.URL.Redacted(), reqBody),
				"headers", headers.String(),
			)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "recovered from panic", "error", err, "stack", string(debug.Stack()))
				SendJSONErr(ctx, w, http.StatusInternalServerError, fmt.Errorf("panic: %v", err), "Internal error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return m.cors.Handler(next)
}

// BearerAuth restores the session of the bearer token.
func (m *Middleware) BearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Token is missing or invalid")
			return
		}

		sess, err := m.auth.Authenticate(ctx, token)
		if err != nil {
			if errors.Is(err, entity.ErrUnauthenticated) {
				SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Session expired, please log in again")
			} else {
				SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Authentication failed")
			}

			return
		}

		ctx = entity.CtxWithSession(ctx, sess)
		ctx = logger.WithUserID(ctx, sess.User.ID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PaymentRateLimit limits payment actions per session user. It must run after BearerAuth.
func (m *Middleware) PaymentRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sess, err := entity.SessionFromCtx(ctx)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Session expired, please log in again")
			return
		}

		if !m.limiter(sess.User.ID).Allow() {
			SendJSONErr(ctx, w, http.StatusTooManyRequests, nil, "Too many payment requests, please wait")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) limiter(userID string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.limiters[userID]
	if !ok {
		l = &userLimiter{Limiter: rate.NewLimiter(m.paymentRPS, m.paymentBurst)}
		m.limiters[userID] = l
	}

	l.lastSeen = m.now()

	return l.Limiter
}

// EvictIdleLimiters drops the payment limiters of users not seen for maxIdle.
// maxIdle should exceed the time a limiter needs to refill its burst.
func (m *Middleware) EvictIdleLimiters(ctx context.Context, maxIdle time.Duration) int {
	deadline := m.now().Add(-maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0

	for userID, l := range m.limiters {
		if l.lastSeen.Before(deadline) {
			delete(m.limiters, userID)
			evicted++
		}
	}

	if evicted > 0 {
		slog.DebugContext(ctx, "idle payment limiters evicted", "count", evicted, "remaining", len(m.limiters))
	}

	return evicted
}
