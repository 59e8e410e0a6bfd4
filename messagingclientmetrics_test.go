package eulerbot_test

import (
	"github.com/eulerbot/eulerbot"
	"github.com/eulerbot/eulerbot/mocks"
	"github.com/pkg/errors"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"testing"
)

func TestMessagingClientWithTelemetryDelegates(t *testing.T) {
	base := new(mocks.MessagingClient)
	base.On("Connect").Return(errors.New("invalid credentials"))
	base.On("ReadBatch").Return([]eulerbot.Event{{"type": "hello"}})
	base.On("Post", "C1", "hello", mock.Anything).Return(&eulerbot.PostResult{ChannelID: "C1", Timestamp: "1.1"}, nil)

	mc, err := eulerbot.NewMessagingClientWithTelemetry(base, "eulerbot", noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	assert.EqualError(t, mc.Connect(), "invalid credentials")
	assert.Equal(t, []eulerbot.Event{{"type": "hello"}}, mc.ReadBatch())

	r, err := mc.Post("C1", "hello", slack.Attachment{Text: "details"})
	require.NoError(t, err)
	assert.Equal(t, &eulerbot.PostResult{ChannelID: "C1", Timestamp: "1.1"}, r)

	base.AssertCalled(t, "Post", "C1", "hello", []slack.Attachment{{Text: "details"}})
	base.AssertNumberOfCalls(t, "Connect", 1)
	base.AssertNumberOfCalls(t, "ReadBatch", 1)
}
