package eulerbot

import (
	"github.com/pkg/errors"
	"github.com/slack-go/slack"
)

// ErrConnect is the cause of the error returned by Run when the real time connection can't be established
var ErrConnect = errors.New("could not connect to the Slack Real Time Messaging API")

// PostResult identifies a message posted to slack
type PostResult struct {
	ChannelID string
	Timestamp string
}

// Poster is implemented by any value that has the Post method. Integrations only need this
// to send their responses which keeps them easy to test
type Poster interface {
	// Post sends text (and optional attachments) to a channel or user id
	Post(targetID string, text string, attachments ...slack.Attachment) (result *PostResult, err error)
}

// MessagingClient is the contract eulerbot needs from the real time messaging transport.
// The wire protocol is entirely left to implementations
type MessagingClient interface {
	Poster

	// Connect establishes the real time connection
	Connect() (err error)

	// ReadBatch returns the events received since the last call without blocking. An empty batch
	// means either nothing was received or the transport failed
	ReadBatch() (events []Event)
}

// DirectoryLoader loads the user directory information used to classify events
type DirectoryLoader interface {
	// ListUsers returns all known slack users
	ListUsers() (users []slack.User, err error)

	// ListDirectMessageChannels returns the ids of the direct message channels open with the bot
	ListDirectMessageChannels() (channelIDs []string, err error)
}
