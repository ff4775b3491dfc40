// Package kafka publishes order events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/mahabubulhasibshawon/delivery-hub/internal/domain"
	"github.com/mahabubulhasibshawon/delivery-hub/internal/ports"
)

const eventTypeHeader = "event-type"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	writer messageWriter
	topic  string
}

var _ ports.EventPublisherPort = (*Producer)(nil)

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		topic: topic,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
			RequiredAcks:           kafka.RequireOne,
		},
	}
}

// Publish writes event as JSON. Messages sharing a key land on the same
// partition, so per-order events stay ordered.
func (p *Producer) Publish(ctx context.Context, key string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}
	if e, ok := event.(domain.OrderEvent); ok {
		msg.Headers = append(msg.Headers, kafka.Header{Key: eventTypeHeader, Value: []byte(e.Type)})
	}

	return p.writer.WriteMessages(ctx, msg)
}

func (p *Producer) Topic() string { return p.topic }

func (p *Producer) Close() error {
	return p.writer.Close()
}
