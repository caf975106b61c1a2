package broker_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/pkg/broker"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.msgs = append(f.msgs, msgs...)
	return f.err
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestProducer_PaymentSettled(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	p := broker.NewProducerWithWriter(slog.Default(), w, "portal.payment.settled")

	p.PaymentSettled(context.Background(), entity.PaymentSettledEvent{
		InvoiceID:  7,
		CustomerID: "cust-7",
		OrderID:    "order_1",
		PaymentID:  "pay_1",
		Amount:     decimal.RequireFromString("500.00"),
		SettledAt:  time.Date(2024, time.January, 6, 8, 0, 0, 0, time.UTC),
	})

	require.Len(t, w.msgs, 1)
	require.Equal(t, "portal.payment.settled", w.msgs[0].Topic)
	require.Equal(t, []byte("7"), w.msgs[0].Key)
	require.JSONEq(t, `{
		"invoice_id": 7,
		"customer_id": "cust-7",
		"order_id": "order_1",
		"payment_id": "pay_1",
		"amount": "500",
		"settled_at": "2024-01-06T08:00:00Z"
	}`, string(w.msgs[0].Value))

	p.Close()
	require.True(t, w.closed)
}

func TestProducer_WriteFailureIsLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := slog.New(slog.NewJSONHandler(&buf, nil))
	p := broker.NewProducerWithWriter(l, &fakeWriter{err: errors.New("no brokers")}, "topic")

	p.PaymentSettled(context.Background(), entity.PaymentSettledEvent{InvoiceID: 1})

	require.Contains(t, buf.String(), "write kafka message: no brokers")
}
