package eulerbot_test

import (
	"github.com/eulerbot/eulerbot"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestEventAccessors(t *testing.T) {
	e := eulerbot.Event{"type": "message", "channel": "C1", "user": "U1", "text": "hello", "subtype": "bot_message", "ts": "1355517523.000005"}

	assert.Equal(t, "message", e.Type())
	assert.Equal(t, "C1", e.Channel())
	assert.Equal(t, "U1", e.User())
	assert.Equal(t, "hello", e.Text())
	assert.Equal(t, "bot_message", e.Subtype())
	assert.Equal(t, "1355517523.000005", e.Timestamp())
	assert.True(t, e.IsMessage())
}

func TestEventWithMissingKeys(t *testing.T) {
	e := eulerbot.Event{"type": "hello"}

	assert.Equal(t, "", e.Channel())
	assert.Equal(t, "", e.User())
	assert.Equal(t, "", e.Text())
	assert.False(t, e.IsMessage())
}

func TestEventGetString(t *testing.T) {
	e := eulerbot.Event{"text": "hi", "count": 3, "nothing": nil, "nested": map[string]interface{}{"a": 1}}

	v, ok := e.GetString("text")
	assert.True(t, ok)
	assert.Equal(t, "hi", v)

	v, ok = e.GetString("count")
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	_, ok = e.GetString("nothing")
	assert.False(t, ok)

	_, ok = e.GetString("missing")
	assert.False(t, ok)

	_, ok = e.GetString("nested")
	assert.False(t, ok)
}

func TestNilEvent(t *testing.T) {
	var e eulerbot.Event

	assert.Equal(t, "", e.Type())
	assert.False(t, e.IsMessage())
}
