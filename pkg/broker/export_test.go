package broker

import "log/slog"

func NewProducerWithWriter(l *slog.Logger, w messageWriter, topic string) *Producer {
	return &Producer{l: l, w: w, paymentSettledTopic: topic}
}
