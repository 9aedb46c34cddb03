package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/kafka"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func assignedEvent() order.Event {
	courierID := kernel.NewUUID()
	return order.Event{
		Type:       order.EventCourierAssigned,
		OrderID:    kernel.NewUUID(),
		CustomerID: kernel.NewUUID(),
		CourierID:  &courierID,
		Status:     order.EnRoute,
		OccurredAt: time.Date(2025, 6, 2, 13, 30, 0, 0, time.UTC),
	}
}

func TestOrderEventPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	publisher, err := kafka.NewOrderEventPublisher(producer, "orders.changed")
	require.NoError(t, err)
	event := assignedEvent()

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		assert.Equal(t, "orders.changed", msg.Topic)

		key, err := msg.Key.Encode()
		require.NoError(t, err)
		assert.Equal(t, event.OrderID.String(), string(key))

		value, err := msg.Value.Encode()
		require.NoError(t, err)
		var decoded kafka.OrderChangedMessage
		require.NoError(t, json.Unmarshal(value, &decoded))
		assert.Equal(t, "order.courier_assigned", decoded.EventType)
		assert.Equal(t, "en_route", decoded.Status)
		require.NotNil(t, decoded.CourierID)
		assert.Equal(t, event.CourierID.String(), *decoded.CourierID)
		return nil
	})

	require.NoError(t, publisher.Publish(context.Background(), event))
	require.NoError(t, publisher.Close())
}

func TestOrderEventPublisher_PublishFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	publisher, err := kafka.NewOrderEventPublisher(producer, "orders.changed")
	require.NoError(t, err)
	producer.ExpectSendMessageAndFail(errors.New("leader not available"))

	err = publisher.Publish(context.Background(), assignedEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "orders.changed")
	require.NoError(t, publisher.Close())
}

func TestNewOrderEventPublisher_Validation(t *testing.T) {
	_, err := kafka.NewOrderEventPublisher(nil, "orders.changed")
	assert.Error(t, err)

	producer := mocks.NewSyncProducer(t, nil)
	_, err = kafka.NewOrderEventPublisher(producer, "")
	assert.Error(t, err)
	require.NoError(t, producer.Close())
}

func TestLogPublisher_Publish(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	publisher := kafka.NewLogPublisher(zap.New(core))
	event := assignedEvent()

	require.NoError(t, publisher.Publish(context.Background(), event))

	entries := logs.FilterMessage("order event").All()
	require.Len(t, entries, 1)
	assert.Equal(t, event.OrderID.String(), entries[0].ContextMap()["order_id"])
	assert.Equal(t, "en_route", entries[0].ContextMap()["status"])
}
