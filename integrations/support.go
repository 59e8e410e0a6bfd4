package integrations

import (
	"fmt"
	"github.com/eulerbot/eulerbot"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"strings"
	"sync/atomic"
)

// ChannelSupportName is the name of the channel support responder
const ChannelSupportName = "channelSupport"

// triggerWords are the (case sensitive) words that get a message answered with the on-call engineer
var triggerWords = []string{
	"help",
	"hitman",
	"assistance",
	"assist with",
	"support",
	"<!here|@here>",
}

// OnCallFinder is implemented by any value that returns the slack id of the engineer on call.
//
// OnCallResolver implements this interface
type OnCallFinder interface {
	OnCall() (onCall string)
}

// OnCallFinderFunc adapts a function to the OnCallFinder interface
type OnCallFinderFunc func() string

// OnCall calls f()
func (f OnCallFinderFunc) OnCall() string {
	return f()
}

// ChannelSupport answers messages asking for help with a mention of the engineer on call
type ChannelSupport struct {
	id     uuid.UUID
	poster eulerbot.Poster
	onCall OnCallFinder
	parser *LanguageParser
	log    eulerbot.SLogger

	eventsReceived  atomic.Uint64
	eventsProcessed atomic.Uint64
}

// NewOpsGenieChannelSupport creates a ChannelSupport finding the on-call engineer with the
// OpsGenie schedule and the slack user directory
func NewOpsGenieChannelSupport(services *eulerbot.BotServices) (r eulerbot.Responder, err error) {
	schedule := NewOpsGenieSchedule(services.Config, services.Log)
	resolver := NewOnCallResolver(services.Config, schedule, services.Directory, services.Log)
	parser := NewLanguageParser(services.Config, services.Log)

	return NewChannelSupport(services.Poster, resolver, parser, services.Log), nil
}

// NewChannelSupport creates a new ChannelSupport
func NewChannelSupport(poster eulerbot.Poster, onCall OnCallFinder, parser *LanguageParser, logger eulerbot.SLogger) (cs *ChannelSupport) {
	cs = new(ChannelSupport)
	cs.id = uuid.New()
	cs.poster = poster
	cs.onCall = onCall
	cs.parser = parser
	cs.log = logger

	cs.log.Printf("Loaded Channel Support Integration [%s]", cs.id)

	return cs
}

// Name returns the responder name
func (cs *ChannelSupport) Name() string {
	return ChannelSupportName
}

// ID returns the instance id of the responder
func (cs *ChannelSupport) ID() string {
	return cs.id.String()
}

// EventsReceived returns the number of events the responder was updated with
func (cs *ChannelSupport) EventsReceived() uint64 {
	return cs.eventsReceived.Load()
}

// EventsProcessed returns the number of events with text the responder handled
func (cs *ChannelSupport) EventsProcessed() uint64 {
	return cs.eventsProcessed.Load()
}

// HasTriggerWord returns true if text contains one of the trigger words
func HasTriggerWord(text string) bool {
	for _, w := range triggerWords {
		if strings.Contains(text, w) {
			return true
		}
	}

	return false
}

// ParseQuery returns the subject and object of text. A text that can't be parsed has
// no subject and no object
func (cs *ChannelSupport) ParseQuery(text string) (subject string, object string) {
	pt, err := cs.parser.Parse(text)
	if err != nil {
		cs.log.Printf("Unable to parse [%s]: %v", text, err)
		return NoSubjectFound, ""
	}

	subject, object = pt.Subject(), pt.Object()
	cs.log.Debugf("Subject: %s -> %s", subject, object)

	return subject, object
}

// GenerateResponse returns the answer to a request for help
func (cs *ChannelSupport) GenerateResponse(text string) string {
	_, object := cs.ParseQuery(text)
	hitman := cs.onCall.OnCall()

	if object != "" {
		return fmt.Sprintf("Our hitman, [<@%s>] is guaranteed to eliminate _%s_ problem(s)", hitman, object)
	}

	return fmt.Sprintf("Our hitman [<@%s>] should be able to help you.", hitman)
}

// Update answers messages with a trigger word
func (cs *ChannelSupport) Update(e eulerbot.Event) (err error) {
	cs.eventsReceived.Add(1)

	text := e.Text()
	if text == "" {
		return nil
	}

	if HasTriggerWord(text) {
		response := fmt.Sprintf("<@%s>, %s", e.User(), cs.GenerateResponse(text))
		cs.log.Debugf("%s", response)

		if _, err = cs.poster.Post(e.Channel(), response); err != nil {
			return errors.Wrapf(err, "failed to post support response to [%s]", e.Channel())
		}
	}

	cs.eventsProcessed.Add(1)

	return nil
}
