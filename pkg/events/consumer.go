package events

import (
	"encoding/json"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/rs/zerolog/log"
	"github.com/setoferry/setoferry/pkg/ctdf"
)

const consumerBatchSize = 10

// StartReloadConsumer runs reload every time a reload request arrives on the
// queue. Requests arriving together are collapsed into a single reload.
func StartReloadConsumer(connection rmq.Connection, queueName string, reload func() error) error {
	log.Info().Str("queue", queueName).Msg("Starting events consumer")

	queue, err := connection.OpenQueue(queueName)
	if err != nil {
		return err
	}
	if err := queue.StartConsuming(consumerBatchSize*2, 1*time.Second); err != nil {
		return err
	}

	_, err = queue.AddBatchConsumer("timetable-reload", consumerBatchSize, 2*time.Second, NewReloadConsumer(reload))

	return err
}

type ReloadConsumer struct {
	reload func() error
}

func NewReloadConsumer(reload func() error) *ReloadConsumer {
	return &ReloadConsumer{reload: reload}
}

func (consumer *ReloadConsumer) Consume(batch rmq.Deliveries) {
	reloadRequested := false

	for _, payload := range batch.Payloads() {
		var event ctdf.Event
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			log.Error().Err(err).Msg("Failed to decode event")
			continue
		}

		if event.Type == ctdf.EventTypeTimetableReloadRequested {
			reloadRequested = true
		}
	}

	if reloadRequested {
		if err := consumer.reload(); err != nil {
			log.Error().Err(err).Msg("Failed to reload timetable")
		}
	}

	if ackErrors := batch.Ack(); len(ackErrors) > 0 {
		for _, err := range ackErrors {
			log.Error().Err(err).Msg("Failed to acknowledge event")
		}
	}
}
