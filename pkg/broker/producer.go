package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/portal/internal/entity"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes portal events. Writes are asynchronous; failures are logged.
type Producer struct {
	l                   *slog.Logger
	w                   messageWriter
	paymentSettledTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                   l,
		w:                   w,
		paymentSettledTopic: topic,
	}
}

// PaymentSettled is keyed by invoice id so events of one invoice stay ordered.
func (p *Producer) PaymentSettled(ctx context.Context, e entity.PaymentSettledEvent) {
	b, err := json.Marshal(e)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(e.InvoiceID, 10)),
		Value: b,
		Topic: p.paymentSettledTopic,
	})
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

// Discard is used when Kafka is disabled.
type Discard struct{}

func (Discard) PaymentSettled(ctx context.Context, e entity.PaymentSettledEvent) {
	slog.DebugContext(ctx, "payment settled event not published", "invoice_id", e.InvoiceID)
}

type infoLogger struct {
	l *slog.Logger
}

func (i *infoLogger) Printf(format string, args ...any) {
	i.l.Debug(fmt.Sprintf(format, args...))
}

type errorLogger struct {
	l *slog.Logger
}

func (e *errorLogger) Printf(format string, args ...any) {
	e.l.Error(fmt.Sprintf(format, args...))
}
