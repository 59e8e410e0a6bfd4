package eulerbot

import (
	"github.com/spf13/cast"
)

// Event keys read by eulerbot and its integrations
const (
	TypeKey      = "type"
	ChannelKey   = "channel"
	UserKey      = "user"
	TextKey      = "text"
	SubtypeKey   = "subtype"
	TimestampKey = "ts"
)

// MessageEventType is the only event type that gets dispatched to responders
const MessageEventType = "message"

// Event is a raw event as received from the real time messaging firehose. Its content is
// never validated: the accessors return zero values for missing or mistyped keys
type Event map[string]interface{}

// GetString returns the value of key as a string along with whether or not it was present
// and convertible
func (e Event) GetString(key string) (value string, ok bool) {
	raw, exists := e[key]
	if !exists || raw == nil {
		return "", false
	}

	value, err := cast.ToStringE(raw)
	if err != nil {
		return "", false
	}

	return value, true
}

// Type returns the event type tag (i.e. "message", "hello", "presence_change")
func (e Event) Type() (t string) {
	t, _ = e.GetString(TypeKey)
	return t
}

// Channel returns the channel identifier the event was sent to
func (e Event) Channel() (channelID string) {
	channelID, _ = e.GetString(ChannelKey)
	return channelID
}

// User returns the identifier of the user that originated the event
func (e Event) User() (userID string) {
	userID, _ = e.GetString(UserKey)
	return userID
}

// Text returns the message body
func (e Event) Text() (text string) {
	text, _ = e.GetString(TextKey)
	return text
}

// Subtype returns the message subtype (i.e. "message_changed"), empty for regular messages
func (e Event) Subtype() (subtype string) {
	subtype, _ = e.GetString(SubtypeKey)
	return subtype
}

// Timestamp returns the slack timestamp of the message
func (e Event) Timestamp() (ts string) {
	ts, _ = e.GetString(TimestampKey)
	return ts
}

// IsMessage returns true if the event is of the message type
func (e Event) IsMessage() bool {
	return e.Type() == MessageEventType
}
