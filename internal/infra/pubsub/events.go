package pubsub

import (
	"encoding/json"

	"danyowa/internal/domain/service"

	"github.com/pkg/errors"
)

// Attribute keys set on every published dispatch event
const (
	AttrEventID   = "event_id"
	AttrUserID    = "user_id"
	AttrKind      = "kind"
	AttrRequestID = "request_id"
)

// encodeEvent serializes the event and builds the message attributes used for filtering and tracing
func encodeEvent(event *service.DispatchEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		AttrEventID: event.EventID,
		AttrUserID:  event.UserID,
		AttrKind:    string(event.Kind),
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return data, attributes, nil
}

// DecodeEvent parses the payload of a dispatch event
func DecodeEvent(data []byte) (*service.DispatchEvent, error) {
	var event service.DispatchEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "decode dispatch event")
	}
	if event.EventID == "" || event.Subscription.Endpoint == "" {
		return nil, errors.New("dispatch event missing event_id or subscription endpoint")
	}

	return &event, nil
}
