package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	Auth     Auth
	Backend  Backend
	Checkout Checkout
	Redis    Redis
	Kafka    Kafka
	Archive  Archive
	Document Document
	Jobs     Jobs
}

type HTTP struct {
	Port           int      `env:"HTTP_PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" envDefault:"*"`
	// PaymentRPS limits payment actions per user.
	PaymentRPS   float64 `env:"HTTP_PAYMENT_RPS" envDefault:"1"`
	PaymentBurst int     `env:"HTTP_PAYMENT_BURST" envDefault:"5"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Auth struct {
	// JWTSigningKey enables HS256 verification of login tokens. Empty leaves
	// verification to the backend.
	JWTSigningKey string `env:"AUTH_JWT_SIGNING_KEY" envDefault:""`
}

type Backend struct {
	BaseURL   string        `env:"BACKEND_BASE_URL"`
	Timeout   time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`
	RetryMax  int           `env:"BACKEND_RETRY_MAX" envDefault:"2"`
	RateLimit float64       `env:"BACKEND_RATE_LIMIT" envDefault:"20"`
	RateBurst int           `env:"BACKEND_RATE_BURST" envDefault:"10"`
}

type Checkout struct {
	ScriptURL  string        `env:"CHECKOUT_SCRIPT_URL" envDefault:"https://checkout.razorpay.com/v1/checkout.js"`
	KeyID      string        `env:"CHECKOUT_KEY_ID"`
	Name       string        `env:"CHECKOUT_NAME" envDefault:"TaxPortal"`
	ThemeColor string        `env:"CHECKOUT_THEME_COLOR" envDefault:"#2563EB"`
	SessionTTL time.Duration `env:"CHECKOUT_SESSION_TTL" envDefault:"30m"`
}

type Redis struct {
	Addr       string        `env:"REDIS_ADDR"`
	Password   string        `env:"REDIS_PASSWORD" envDefault:""`
	DB         int           `env:"REDIS_DB" envDefault:"0"`
	SessionTTL time.Duration `env:"REDIS_SESSION_TTL" envDefault:"24h"`
}

type Kafka struct {
	Enabled             bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers             []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	PaymentSettledTopic string   `env:"KAFKA_PAYMENT_SETTLED_TOPIC" envDefault:"portal.payment.settled"`
}

type Archive struct {
	Enabled   bool   `env:"ARCHIVE_ENABLED" envDefault:"false"`
	Endpoint  string `env:"ARCHIVE_ENDPOINT" envDefault:""`
	Region    string `env:"ARCHIVE_REGION" envDefault:"us-east-1"`
	Bucket    string `env:"ARCHIVE_BUCKET" envDefault:"invoices"`
	AccessKey string `env:"ARCHIVE_ACCESS_KEY" envDefault:""`
	SecretKey string `env:"ARCHIVE_SECRET_KEY" envDefault:""`
}

type Document struct {
	// FontFile is an optional UTF-8 TTF used instead of the core Helvetica font.
	FontFile string `env:"DOCUMENT_FONT_FILE" envDefault:""`
}

type Jobs struct {
	CheckoutExpiryInterval time.Duration `env:"JOB_CHECKOUT_EXPIRY_INTERVAL" envDefault:"1m"`
	ListEvictInterval      time.Duration `env:"JOB_LIST_EVICT_INTERVAL" envDefault:"10m"`
	ListMaxIdle            time.Duration `env:"JOB_LIST_MAX_IDLE" envDefault:"1h"`
	LimiterMaxIdle         time.Duration `env:"JOB_LIMITER_MAX_IDLE" envDefault:"15m"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
