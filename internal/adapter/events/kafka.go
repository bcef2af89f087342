package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"realestate-lending/internal/domain/payment"

	"github.com/segmentio/kafka-go"
)

const EventPaymentRecorded = "lending.payment.recorded"

// messageWriter is the slice of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

var _ payment.Publisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}
	if topic == "" {
		topic = EventPaymentRecorded
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		},
		topic: topic,
	}, nil
}

// PublishRecorded keys by loan id so every payment of a loan lands on one partition.
func (p *KafkaPublisher) PublishRecorded(ctx context.Context, evt payment.Recorded) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode %s: %w", EventPaymentRecorded, err)
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(strconv.FormatUint(evt.LoanID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventPaymentRecorded)},
		},
		Time: time.Now().UTC(),
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{ Log *slog.Logger }

func (n NoopPublisher) PublishRecorded(_ context.Context, evt payment.Recorded) error {
	if n.Log != nil {
		n.Log.Debug("payment event dropped, no broker configured", "payment_id", evt.PaymentID, "loan_id", evt.LoanID)
	}
	return nil
}
