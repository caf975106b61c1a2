package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/samandr77/microservices/portal/internal/api"
	"github.com/samandr77/microservices/portal/internal/checkout"
	"github.com/samandr77/microservices/portal/internal/clients/archive"
	"github.com/samandr77/microservices/portal/internal/clients/backend"
	"github.com/samandr77/microservices/portal/internal/invoicedoc"
	"github.com/samandr77/microservices/portal/internal/invoices"
	"github.com/samandr77/microservices/portal/internal/payments"
	"github.com/samandr77/microservices/portal/internal/service"
	"github.com/samandr77/microservices/portal/internal/session"
	"github.com/samandr77/microservices/portal/pkg/broker"
	"github.com/samandr77/microservices/portal/pkg/config"
	"github.com/samandr77/microservices/portal/pkg/job"
	"github.com/samandr77/microservices/portal/pkg/logger"
	"github.com/samandr77/microservices/portal/pkg/transport"
)

const (
	ReadTimeout = 3 * time.Second
	// WriteTimeout covers the payment result call, which waits for verification.
	WriteTimeout    = 60 * time.Second
	ShutdownTimeout = 10 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	panicOnErr("ping redis", err)

	backendClient := backend.NewClient(cfg.Backend)
	lists := invoices.NewRegistry(backendClient)

	bridge := checkout.NewBridge(cfg.Checkout.ScriptURL, &http.Client{
		Timeout:   cfg.Backend.Timeout,
		Transport: transport.NewRequestIDRoundTripper(http.DefaultTransport),
	}, cfg.Checkout.SessionTTL)

	var publisher checkout.Publisher = broker.Discard{}

	if cfg.Kafka.Enabled {
		producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.PaymentSettledTopic)
		defer producer.Close()

		publisher = producer
	}

	orchestrator := checkout.New(checkout.Config{
		KeyID:      cfg.Checkout.KeyID,
		Name:       cfg.Checkout.Name,
		ThemeColor: cfg.Checkout.ThemeColor,
	}, backendClient, bridge, lists, publisher)

	var archiver service.Archiver

	if cfg.Archive.Enabled {
		archiveClient, err := archive.NewClient(cfg.Archive)
		panicOnErr("create archive client", err)

		archiver = archiveClient
	}

	renderer := invoicedoc.NewRenderer(invoicedoc.WithFontFile(cfg.Document.FontFile))

	s := service.New(
		session.NewStore(rdb, cfg.Redis.SessionTTL, sessionOptions(cfg.Auth)...),
		lists,
		renderer,
		orchestrator,
		bridge,
		payments.New(backendClient),
		archiver,
	)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(s, cfg.HTTP.AllowedOrigins, cfg.HTTP.PaymentRPS, cfg.HTTP.PaymentBurst)

	jobs := job.NewService().
		RegisterJob("expire abandoned checkouts", cfg.Jobs.CheckoutExpiryInterval, bridge.ExpireStale).
		RegisterJob("evict idle invoice lists", cfg.Jobs.ListEvictInterval, func(ctx context.Context) error {
			lists.EvictIdle(ctx, cfg.Jobs.ListMaxIdle)
			return nil
		}).
		RegisterJob("evict idle payment limiters", cfg.Jobs.ListEvictInterval, func(ctx context.Context) error {
			mw.EvictIdleLimiters(ctx, cfg.Jobs.LimiterMaxIdle)
			return nil
		}).
		Start(ctx)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		shutdownCtx, cancelShutdown := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
		defer cancelShutdown()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}

		cancel()
		jobs.Stop()
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}

func sessionOptions(cfg config.Auth) []session.Option {
	if cfg.JWTSigningKey == "" {
		slog.Warn("AUTH_JWT_SIGNING_KEY is empty, login tokens are not verified locally")
		return nil
	}

	return []session.Option{session.WithSigningKey([]byte(cfg.JWTSigningKey))}
}
