package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

// LendingTopic carries the audit stream of borrow/return transitions.
const LendingTopic = "lending-events"

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

type LendingEventType string

const (
	EventBooked   LendingEventType = "BOOKED"
	EventReturned LendingEventType = "RETURNED"
)

type LendingEvent struct {
	BookID    string           `json:"bookId"`
	UserID    string           `json:"userId"`
	Event     LendingEventType `json:"event"`
	Timestamp time.Time        `json:"timestamp"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
