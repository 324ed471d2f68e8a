package events

import (
	"encoding/json"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/setoferry/setoferry/pkg/ctdf"
)

const DefaultQueueName = "timetable-events"

// Publish encodes the event onto the named queue, stamping it if the caller
// left Timestamp unset.
func Publish(connection rmq.Connection, queueName string, event *ctdf.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	queue, err := connection.OpenQueue(queueName)
	if err != nil {
		return err
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return queue.PublishBytes(eventBytes)
}
