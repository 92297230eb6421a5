package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	cb "github.com/riofed5/Book-reservation/pkg/circuit_breaker"
	"github.com/riofed5/Book-reservation/pkg/kafka"
)

// Events is the lending audit stream. Emission is best-effort: a broker
// failure never fails the booking step that triggered it.
type Events interface {
	LendingEvent(ctx context.Context, ev kafka.LendingEvent)
}

type kafkaEvents struct {
	producer sarama.SyncProducer
	breaker  cb.CircuitBreaker
	topic    string
	log      *zap.Logger
}

func NewEvents(producer sarama.SyncProducer, log *zap.Logger) Events {
	return &kafkaEvents{
		producer: producer,
		breaker:  cb.New(20, 30*time.Second, 0.5, 3),
		topic:    kafka.LendingTopic,
		log:      log.Named("events"),
	}
}

func (e *kafkaEvents) LendingEvent(_ context.Context, ev kafka.LendingEvent) {
	err := e.breaker.Call(func() error {
		data, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		msg := &sarama.ProducerMessage{Topic: e.topic, Value: sarama.StringEncoder(data)}
		_, _, err = e.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		e.log.Warn("lending event dropped",
			zap.String("bookId", ev.BookID),
			zap.String("event", string(ev.Event)),
			zap.Error(err))
	}
}
