package eulerbot

import (
	"github.com/eulerbot/eulerbot/config"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"io"
	"strings"
	"testing"
)

func TestToEventFromMessageEvent(t *testing.T) {
	e := toEvent(slack.RTMEvent{Type: "message", Data: &slack.MessageEvent{Msg: slack.Msg{Channel: "C1", User: "U1", Text: "<@BOT> help", Timestamp: "1355517523.000005"}}})

	assert.Equal(t, "message", e.Type())
	assert.Equal(t, "C1", e.Channel())
	assert.Equal(t, "U1", e.User())
	assert.Equal(t, "<@BOT> help", e.Text())
	assert.Equal(t, "1355517523.000005", e.Timestamp())
	assert.True(t, e.IsMessage())
}

func TestToEventWithoutData(t *testing.T) {
	e := toEvent(slack.RTMEvent{Type: "hello"})

	assert.Equal(t, Event{"type": "hello"}, e)
	assert.False(t, e.IsMessage())
}

func TestToEventTypeComesFromRealTimeEvent(t *testing.T) {
	e := toEvent(slack.RTMEvent{Type: "presence_change", Data: &slack.PresenceChangeEvent{Type: "something_else", Presence: "away", User: "U1"}})

	assert.Equal(t, "presence_change", e.Type())
	assert.Equal(t, "U1", e.User())
}

func TestReadBatchBeforeConnect(t *testing.T) {
	sc := NewSlackClient(config.NewViperWithDefaults(), NewSLogger(NewDefaultLogger(io.Discard), false), io.Discard)

	events := sc.ReadBatch()

	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestCloseBeforeConnect(t *testing.T) {
	sc := NewSlackClient(config.NewViperWithDefaults(), NewSLogger(NewDefaultLogger(io.Discard), false), io.Discard)

	assert.NoError(t, sc.Close())
}

func TestSlackLibraryLogsToConfiguredWriter(t *testing.T) {
	var out strings.Builder
	sc := NewSlackClient(config.NewViperWithDefaults(), NewSLogger(NewDefaultLogger(io.Discard), false), &out)

	sc.apiLog.Print("websocket closed")

	assert.Contains(t, out.String(), "slack: ")
	assert.Contains(t, out.String(), "websocket closed")
}
