package assertresponder_test

import (
	"github.com/eulerbot/eulerbot"
	"github.com/eulerbot/eulerbot/test/assertpost"
	"github.com/eulerbot/eulerbot/test/assertresponder"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

// newEchoer returns a responder echoing questions to the channel they were asked in
func newEchoer(services *eulerbot.BotServices) (eulerbot.Responder, error) {
	return eulerbot.ResponderFunc(func(e eulerbot.Event) error {
		if !strings.HasSuffix(e.Text(), "?") {
			return nil
		}

		if strings.Contains(e.Text(), "fail") {
			return errors.New("failed on purpose")
		}

		_, err := services.Poster.Post(e.Channel(), "you asked: "+e.Text())
		return err
	}), nil
}

func TestMentionIsDrivenToMentionResponder(t *testing.T) {
	a := assertresponder.New("BOT")

	assert.True(t, a.Posts(t, eulerbot.Mention, newEchoer, eulerbot.Event{"type": "message", "channel": "C1", "text": "<@BOT> are you up?"}, func(t *testing.T, posts map[string][]string, err error) bool {
		return assert.NoError(t, err) && assertpost.HasText(t, posts, "C1", "you asked: <@BOT> are you up?")
	}))
}

func TestChannelMessageIsNotDrivenToMentionResponder(t *testing.T) {
	a := assertresponder.New("BOT")

	assert.True(t, a.Posts(t, eulerbot.Mention, newEchoer, eulerbot.Event{"type": "message", "channel": "C1", "text": "are you up?"}, func(t *testing.T, posts map[string][]string, err error) bool {
		return assert.NoError(t, err) && assertpost.NothingPosted(t, posts)
	}))
}

func TestDirectMessageIsDrivenToDirectResponder(t *testing.T) {
	a := assertresponder.New("BOT", assertresponder.OptionDirectMessages("D1"))

	assert.True(t, a.Posts(t, eulerbot.Direct, newEchoer, eulerbot.Event{"type": "message", "channel": "D1", "text": "<@BOT> where's the chickadee?"}, func(t *testing.T, posts map[string][]string, err error) bool {
		return assert.NoError(t, err) && assertpost.HasTextContaining(t, posts, "D1", "chickadee")
	}))
}

func TestResponderErrorIsValidated(t *testing.T) {
	a := assertresponder.New("BOT")

	assert.True(t, a.Posts(t, eulerbot.Channel, newEchoer, eulerbot.Event{"type": "message", "channel": "C1", "text": "will this fail?"}, func(t *testing.T, posts map[string][]string, err error) bool {
		return assert.EqualError(t, err, "failed on purpose") && assertpost.NothingPosted(t, posts)
	}))
}

func TestServicesIdentityIsTheBotUser(t *testing.T) {
	a := assertresponder.New("BOT")

	factory := func(services *eulerbot.BotServices) (eulerbot.Responder, error) {
		id, err := services.Identity.SelfID()
		if err != nil {
			return nil, err
		}

		return eulerbot.ResponderFunc(func(e eulerbot.Event) error {
			_, err := services.Poster.Post(e.Channel(), "I am "+id)
			return err
		}), nil
	}

	assert.True(t, a.Posts(t, eulerbot.Channel, factory, eulerbot.Event{"type": "message", "channel": "C1", "text": "who are you"}, func(t *testing.T, posts map[string][]string, err error) bool {
		return assert.NoError(t, err) && assertpost.HasText(t, posts, "C1", "I am BOT")
	}))
}
