package assertresponder

import (
	"github.com/eulerbot/eulerbot"
	"github.com/eulerbot/eulerbot/config"
	"github.com/eulerbot/eulerbot/test/capture"
	"github.com/slack-go/slack"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"io"
	"log"
	"testing"
)

// Asserter represents a responder driver/asserter and holds the bot identifier and direct message
// channels that tests are using when sending test messages for processing
type Asserter struct {
	botUserID string
	dms       []string
	users     []slack.User
	config    *viper.Viper
	logger    *log.Logger
}

// New creates a new asserter with the given botUserID
// (only include the id without the '@' prefix).
// The botUserID is used in order to detect mentions formed with
// <@botUserID>
func New(botUserID string, options ...Option) (a *Asserter) {
	a = new(Asserter)
	a.botUserID = botUserID
	a.dms = make([]string, 0)
	a.users = make([]slack.User, 0)

	for _, option := range options {
		option(a)
	}

	return a
}

// Option defines an option for the Asserter
type Option func(*Asserter)

// OptionLog sets a logger for the asserter such that this logger is given to the responder when
// driven by the asserter
func OptionLog(logger *log.Logger) func(*Asserter) {
	return func(a *Asserter) {
		a.logger = logger
	}
}

// OptionDirectMessages sets the direct message channels of the bot
func OptionDirectMessages(channelIDs ...string) func(*Asserter) {
	return func(a *Asserter) {
		a.dms = channelIDs
	}
}

// OptionUsers sets the users found in the user directory given to the responder
func OptionUsers(users ...slack.User) func(*Asserter) {
	return func(a *Asserter) {
		a.users = users
	}
}

// OptionConfig sets the configuration given to the responder. Defaults are layered on top of it
func OptionConfig(v *viper.Viper) func(*Asserter) {
	return func(a *Asserter) {
		a.config = v
	}
}

// ResultValidator is a function to do further validation of the messages posted by a responder (keyed by
// channel id) and the error it returned. The return value is meant to be true if validation
// is successful and false otherwise (following the testify convention)
type ResultValidator func(t *testing.T, posts map[string][]string, err error) bool

// Posts creates a responder with the factory, drives it with the message event and passes the
// posted messages to a validator. The responder is only updated if the event is classified as
// category c. It follows the style of github.com/stretchr/testify/assert as far as returning
// true/false to indicate success for further nested testing
func (a *Asserter) Posts(t *testing.T, c eulerbot.Category, factory eulerbot.ResponderFactory, e eulerbot.Event, validate ResultValidator) (valid bool) {
	pc := capture.NewPostCaptor()

	r, err := factory(a.services(pc))
	if !assert.NoError(t, err, "Error creating responder") {
		return false
	}

	if eulerbot.Classify(e, a.botUserID, eulerbot.NewDirectMessageSet(a.dms...)) == c {
		err = r.Update(e)
	}

	return validate(t, pc.SentMessages, err)
}

func (a *Asserter) services(pc *capture.PostCaptor) *eulerbot.BotServices {
	v := a.config
	if v == nil {
		v = viper.New()
	}
	v = config.LayerConfigWithDefaults(v)

	logger := eulerbot.NewSLogger(getLogger(a), true)

	return &eulerbot.BotServices{
		Poster:    pc,
		Directory: eulerbot.NewUserDirectory(v, a, logger),
		Identity:  eulerbot.NewIdentityResolver(v.GetString(config.NameKey), a, logger),
		Config:    v,
		Log:       logger,
	}
}

// ListUsers returns the users set with OptionUsers
func (a *Asserter) ListUsers() ([]slack.User, error) {
	return a.users, nil
}

// ListDirectMessageChannels returns the channels set with OptionDirectMessages
func (a *Asserter) ListDirectMessageChannels() ([]string, error) {
	return a.dms, nil
}

// FindByName returns the bot user so that the identity given to the responder is the asserter's bot user id
func (a *Asserter) FindByName(name string) (user slack.User, found bool, err error) {
	return slack.User{ID: a.botUserID, Name: name}, true, nil
}

func getLogger(a *Asserter) (logger *log.Logger) {
	if a.logger != nil {
		return a.logger
	}

	return log.New(io.Discard, "", 0)
}
