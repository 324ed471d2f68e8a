package events

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/setoferry/setoferry/pkg/ctdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDelivery(t *testing.T, event ctdf.Event) *rmq.TestDelivery {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	return rmq.NewTestDeliveryString(string(payload))
}

func TestPublish(t *testing.T) {
	connection := rmq.NewTestConnection()

	err := Publish(connection, DefaultQueueName, &ctdf.Event{
		Type: ctdf.EventTypeTimetableReloadRequested,
	})
	require.NoError(t, err)

	deliveries := connection.GetDeliveries(DefaultQueueName)
	require.Len(t, deliveries, 1)

	var event ctdf.Event
	require.NoError(t, json.Unmarshal([]byte(deliveries[0]), &event))
	assert.Equal(t, ctdf.EventTypeTimetableReloadRequested, event.Type)
	assert.False(t, event.Timestamp.IsZero())
}

func TestPublishKeepsTimestamp(t *testing.T) {
	connection := rmq.NewTestConnection()
	timestamp := time.Date(2025, 4, 18, 9, 0, 0, 0, time.UTC)

	event := &ctdf.Event{Type: ctdf.EventTypeTimetableReloaded, Timestamp: timestamp}
	require.NoError(t, Publish(connection, "other", event))

	assert.Equal(t, timestamp, event.Timestamp)
	assert.Len(t, connection.GetDeliveries("other"), 1)
	assert.Empty(t, connection.GetDeliveries(DefaultQueueName))
}

func TestReloadConsumerCollapsesBatch(t *testing.T) {
	reloads := 0
	consumer := NewReloadConsumer(func() error {
		reloads++
		return nil
	})

	deliveries := []*rmq.TestDelivery{
		testDelivery(t, ctdf.Event{Type: ctdf.EventTypeTimetableReloadRequested}),
		testDelivery(t, ctdf.Event{Type: ctdf.EventTypeTimetableReloadRequested}),
		rmq.NewTestDeliveryString("not json"),
	}

	consumer.Consume(rmq.Deliveries{deliveries[0], deliveries[1], deliveries[2]})

	assert.Equal(t, 1, reloads)
	for _, delivery := range deliveries {
		assert.Equal(t, rmq.Acked, delivery.State)
	}
}

func TestReloadConsumerIgnoresOtherEvents(t *testing.T) {
	reloads := 0
	consumer := NewReloadConsumer(func() error {
		reloads++
		return errors.New("not called")
	})

	delivery := testDelivery(t, ctdf.Event{Type: ctdf.EventTypeTimetableReloaded})
	consumer.Consume(rmq.Deliveries{delivery})

	assert.Equal(t, 0, reloads)
	assert.Equal(t, rmq.Acked, delivery.State)
}

func TestReloadConsumerAcksOnFailedReload(t *testing.T) {
	consumer := NewReloadConsumer(func() error {
		return errors.New("timetable missing")
	})

	delivery := testDelivery(t, ctdf.Event{Type: ctdf.EventTypeTimetableReloadRequested})
	consumer.Consume(rmq.Deliveries{delivery})

	assert.Equal(t, rmq.Acked, delivery.State)
}
