package pubsub

import (
	"encoding/json"
	"time"

	"raahi/internal/domain/service"

	"github.com/pkg/errors"
)

// PushEnvelope is the JSON body a Pub/Sub push subscription POSTs to its
// endpoint. Data travels base64 encoded, which encoding/json does for []byte.
type PushEnvelope struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

// PushMessage is the message part of a PushEnvelope.
type PushMessage struct {
	Data        []byte            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// NewPushEnvelope wraps an alert event the way a push subscription delivers it.
func NewPushEnvelope(event *service.AlertEvent, subscription string, publishedAt time.Time) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &PushEnvelope{
		Message: PushMessage{
			Data:        data,
			Attributes:  event.Attributes(),
			MessageID:   event.AlertID,
			PublishTime: publishedAt.UTC().Format(time.RFC3339),
		},
		Subscription: subscription,
	}, nil
}

// AlertEvent decodes the alert event carried in the message data.
func (e *PushEnvelope) AlertEvent() (*service.AlertEvent, error) {
	if len(e.Message.Data) == 0 {
		return nil, errors.New("push message has no data")
	}

	var event service.AlertEvent
	if err := json.Unmarshal(e.Message.Data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to decode alert event")
	}

	return &event, nil
}

// RequestID returns the request id attribute, if the publisher set one.
func (e *PushEnvelope) RequestID() string {
	return e.Message.Attributes[service.EventAttrRequestID]
}
