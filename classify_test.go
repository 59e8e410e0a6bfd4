package eulerbot_test

import (
	"github.com/eulerbot/eulerbot"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestClassifyDirectMessage(t *testing.T) {
	dms := eulerbot.NewDirectMessageSet("D1", "D2")

	c := eulerbot.Classify(eulerbot.Event{"type": "message", "channel": "D2", "text": "hi"}, "BOT", dms)

	assert.Equal(t, eulerbot.Direct, c)
}

func TestClassifyDirectMessageWinsOverMention(t *testing.T) {
	dms := eulerbot.NewDirectMessageSet("D1")

	c := eulerbot.Classify(eulerbot.Event{"type": "message", "channel": "D1", "text": "<@BOT> help"}, "BOT", dms)

	assert.Equal(t, eulerbot.Direct, c)
}

func TestClassifyMention(t *testing.T) {
	c := eulerbot.Classify(eulerbot.Event{"type": "message", "channel": "C1", "text": "hey <@BOT> can you help?"}, "BOT", eulerbot.NewDirectMessageSet("D1"))

	assert.Equal(t, eulerbot.Mention, c)
}

func TestClassifyMentionOfSomeoneElse(t *testing.T) {
	c := eulerbot.Classify(eulerbot.Event{"type": "message", "channel": "C1", "text": "hey <@U2> can you help?"}, "BOT", eulerbot.NewDirectMessageSet())

	assert.Equal(t, eulerbot.Channel, c)
}

func TestClassifyWithoutBotIDNeverMatchesMention(t *testing.T) {
	c := eulerbot.Classify(eulerbot.Event{"type": "message", "channel": "C1", "text": "<@> help"}, "", eulerbot.NewDirectMessageSet())

	assert.Equal(t, eulerbot.Channel, c)
}

func TestClassifyEventWithoutChannelOrText(t *testing.T) {
	c := eulerbot.Classify(eulerbot.Event{"type": "message"}, "BOT", eulerbot.NewDirectMessageSet("D1"))

	assert.Equal(t, eulerbot.Channel, c)
}

func TestClassifyWithNilDirectMessageSet(t *testing.T) {
	var dms eulerbot.DirectMessageSet

	c := eulerbot.Classify(eulerbot.Event{"type": "message", "channel": "C1", "text": "<@BOT>"}, "BOT", dms)

	assert.Equal(t, eulerbot.Mention, c)
}

func TestClassifyIsDeterministic(t *testing.T) {
	e := eulerbot.Event{"type": "message", "channel": "C1", "text": "<@BOT> help"}
	dms := eulerbot.NewDirectMessageSet("D1")

	first := eulerbot.Classify(e, "BOT", dms)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, eulerbot.Classify(e, "BOT", dms))
	}
}

func TestDirectMessageSetContains(t *testing.T) {
	dms := eulerbot.NewDirectMessageSet("D1", "D1", "D2")

	assert.True(t, dms.Contains("D1"))
	assert.True(t, dms.Contains("D2"))
	assert.False(t, dms.Contains("C1"))
	assert.False(t, dms.Contains(""))
	assert.Len(t, dms, 2)
}

func TestMentionToken(t *testing.T) {
	assert.Equal(t, "<@U123>", eulerbot.MentionToken("U123"))
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "direct", eulerbot.Direct.String())
	assert.Equal(t, "mention", eulerbot.Mention.String())
	assert.Equal(t, "channel", eulerbot.Channel.String())
	assert.Equal(t, "category(7)", eulerbot.Category(7).String())
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []eulerbot.Category{eulerbot.Direct, eulerbot.Mention, eulerbot.Channel}, eulerbot.Categories())
}
