package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "relay.reply_stored").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Relay event codes.
const (
	TypeMessageRelayed = "relay.message_relayed"
	TypeReplyStored    = "relay.reply_stored"
	TypeReplyConsumed  = "relay.reply_consumed"
)

// NewMessageRelayed fires when a visitor message was forwarded to the owner.
func NewMessageRelayed(sessionID string) Event {
	return BaseEvent{
		Type:       TypeMessageRelayed,
		Data:       map[string]interface{}{"session_id": sessionID},
		OccurredAt: time.Now(),
	}
}

// NewReplyStored fires when an owner reply was parsed and stored.
func NewReplyStored(sessionID string) Event {
	return BaseEvent{
		Type:       TypeReplyStored,
		Data:       map[string]interface{}{"session_id": sessionID},
		OccurredAt: time.Now(),
	}
}

// NewReplyConsumed fires when a visitor picked up their pending reply.
func NewReplyConsumed(sessionID string) Event {
	return BaseEvent{
		Type:       TypeReplyConsumed,
		Data:       map[string]interface{}{"session_id": sessionID},
		OccurredAt: time.Now(),
	}
}
