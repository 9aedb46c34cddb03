// Package kafka publishes order events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/logger"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// OrderChangedMessage is the JSON value written for every order event.
type OrderChangedMessage struct {
	EventType  string    `json:"eventType"`
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	CourierID  *string   `json:"courierId,omitempty"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

func newOrderChangedMessage(event order.Event) OrderChangedMessage {
	msg := OrderChangedMessage{
		EventType:  string(event.Type),
		OrderID:    event.OrderID.String(),
		CustomerID: event.CustomerID.String(),
		Status:     event.Status.String(),
		OccurredAt: event.OccurredAt.UTC(),
	}
	if event.CourierID != nil {
		id := event.CourierID.String()
		msg.CourierID = &id
	}
	return msg
}

// OrderEventPublisher writes order events with a sync producer. Messages are
// keyed by order id so the events of one order stay ordered.
type OrderEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewOrderEventPublisher(producer sarama.SyncProducer, topic string) (*OrderEventPublisher, error) {
	if producer == nil {
		return nil, fmt.Errorf("kafka producer is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka topic is required")
	}
	return &OrderEventPublisher{producer: producer, topic: topic}, nil
}

// NewSyncProducer dials the brokers with acknowledgement from all in-sync replicas.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Timeout = 5 * time.Second
	return sarama.NewSyncProducer(brokers, config)
}

func (p *OrderEventPublisher) Publish(ctx context.Context, event order.Event) error {
	value, err := json.Marshal(newOrderChangedMessage(event))
	if err != nil {
		return fmt.Errorf("encode order event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID.String()),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte(event.Type)},
		},
		Timestamp: event.OccurredAt,
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send order event to %s: %w", p.topic, err)
	}

	logger.FromCtx(ctx).Debug("order event published",
		zap.String("topic", p.topic),
		zap.String("event", string(event.Type)),
		zap.String("order_id", event.OrderID.String()),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)
	return nil
}

func (p *OrderEventPublisher) Close() error {
	return p.producer.Close()
}

// LogPublisher stands in for Kafka when no brokers are configured.
type LogPublisher struct {
	log *zap.Logger
}

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, event order.Event) error {
	p.log.Info("order event",
		zap.String("event", string(event.Type)),
		zap.String("order_id", event.OrderID.String()),
		zap.String("status", event.Status.String()),
	)
	return nil
}
