package eulerbot

import (
	"encoding/json"
	"github.com/eulerbot/eulerbot/config"
	"github.com/pkg/errors"
	"github.com/slack-go/slack"
	"github.com/spf13/viper"
	"io"
	"log"
	"os"
	"time"
)

const (
	// maxBatchSize bounds how many events a single ReadBatch drains
	maxBatchSize = 256

	// conversationsPageSize is the page size used when listing direct message channels
	conversationsPageSize = 200
)

// SlackClient implements MessagingClient and DirectoryLoader on top of the slack real time messaging API
type SlackClient struct {
	api            *slack.Client
	rtm            *slack.RTM
	name           string
	connectTimeout time.Duration
	log            SLogger
	apiLog         *log.Logger
}

// NewSlackClient creates a new SlackClient with the token and bot name found in the configuration.
// The slack library logs to out (stdout if nil)
func NewSlackClient(v *viper.Viper, logger SLogger, out io.Writer) (sc *SlackClient) {
	if out == nil {
		out = os.Stdout
	}

	sc = new(SlackClient)
	sc.name = v.GetString(config.NameKey)
	sc.connectTimeout = v.GetDuration(config.ConnectTimeoutKey)
	sc.log = logger
	sc.apiLog = log.New(out, "slack: ", defaultLogFlags)
	sc.api = slack.New(
		v.GetString(config.TokenKey),
		slack.OptionDebug(v.GetBool(config.DebugKey)),
		slack.OptionLog(sc.apiLog),
	)

	return sc
}

// Connect starts managing the real time connection and waits for it to be established. An invalid
// token or no successful connection before the connect timeout is an error. Note that no retry is
// attempted beyond what the slack library does during the connect timeout
func (sc *SlackClient) Connect() (err error) {
	sc.rtm = sc.api.NewRTM()
	go sc.rtm.ManageConnection()

	timeout := time.After(sc.connectTimeout)
	for {
		select {
		case msg := <-sc.rtm.IncomingEvents:
			switch e := msg.Data.(type) {
			case *slack.ConnectedEvent:
				sc.log.Printf("Connected to the Slack Real Time Messaging API, connection counter: %d", e.ConnectionCount)
				return nil

			case *slack.InvalidAuthEvent:
				return errors.New("invalid credentials")

			case *slack.ConnectionErrorEvent:
				sc.log.Printf("Connection attempt [%d] failed: %v", e.Attempt, e.ErrorObj)

			default:
				sc.log.Debugf("Ignoring [%s] event while connecting", msg.Type)
			}

		case <-timeout:
			sc.rtm.Disconnect()
			return errors.Errorf("no connection established after %s", sc.connectTimeout)
		}
	}
}

// ReadBatch drains the events received on the real time connection without blocking
func (sc *SlackClient) ReadBatch() (events []Event) {
	events = make([]Event, 0)
	if sc.rtm == nil {
		return events
	}

	for len(events) < maxBatchSize {
		select {
		case msg, ok := <-sc.rtm.IncomingEvents:
			if !ok {
				return events
			}

			sc.logTransportEvent(msg)
			events = append(events, toEvent(msg))

		default:
			return events
		}
	}

	return events
}

// logTransportEvent logs the events reporting on the state of the transport itself
func (sc *SlackClient) logTransportEvent(msg slack.RTMEvent) {
	switch e := msg.Data.(type) {
	case *slack.RTMError:
		sc.log.Printf("Error: %s", e.Error())

	case *slack.InvalidAuthEvent:
		sc.log.Printf("Invalid credentials")

	case *slack.LatencyReport:
		sc.log.Debugf("Current latency: %v", e.Value)

	case *slack.ConnectionErrorEvent:
		sc.log.Printf("Connection error on attempt [%d]: %v", e.Attempt, e.ErrorObj)
	}
}

// toEvent converts a typed slack event back to its raw form. The event type is always set
// from the real time event type
func toEvent(msg slack.RTMEvent) (e Event) {
	e = make(Event)

	if msg.Data != nil {
		if content, err := json.Marshal(msg.Data); err == nil {
			if err := json.Unmarshal(content, &e); err != nil {
				e = make(Event)
			}
		}
	}

	e[TypeKey] = msg.Type

	return e
}

// Post sends a message as the bot user
func (sc *SlackClient) Post(targetID string, text string, attachments ...slack.Attachment) (result *PostResult, err error) {
	options := []slack.MsgOption{slack.MsgOptionText(text, false), slack.MsgOptionUsername(sc.name), slack.MsgOptionAsUser(true)}
	if len(attachments) > 0 {
		options = append(options, slack.MsgOptionAttachments(attachments...))
	}

	channelID, timestamp, err := sc.api.PostMessage(targetID, options...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to post message to [%s]", targetID)
	}

	return &PostResult{ChannelID: channelID, Timestamp: timestamp}, nil
}

// ListUsers returns all users of the workspace
func (sc *SlackClient) ListUsers() (users []slack.User, err error) {
	users, err = sc.api.GetUsers()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// ListDirectMessageChannels returns the ids of all direct message conversations open with the bot
func (sc *SlackClient) ListDirectMessageChannels() (channelIDs []string, err error) {
	channelIDs = make([]string, 0)
	params := &slack.GetConversationsParameters{Types: []string{"im"}, Limit: conversationsPageSize, ExcludeArchived: true}

	for {
		channels, cursor, err := sc.api.GetConversations(params)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list direct message conversations")
		}

		for _, c := range channels {
			channelIDs = append(channelIDs, c.ID)
		}

		if cursor == "" {
			return channelIDs, nil
		}

		params.Cursor = cursor
	}
}

// Close terminates the real time connection, if any
func (sc *SlackClient) Close() (err error) {
	if sc.rtm == nil {
		return nil
	}

	return sc.rtm.Disconnect()
}
