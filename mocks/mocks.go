// Package mocks contains testify mocks of the eulerbot interfaces
package mocks

import (
	"github.com/eulerbot/eulerbot"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/mock"
)

// Responder holds a mock implementing eulerbot.Responder
type Responder struct {
	mock.Mock
}

// Name mocks an implementation of Name
func (mr *Responder) Name() string {
	args := mr.Called()

	return args.String(0)
}

// Update mocks an implementation of Update
func (mr *Responder) Update(e eulerbot.Event) (err error) {
	args := mr.Called(e)

	return args.Error(0)
}

// MessagingClient holds a mock implementing eulerbot.MessagingClient
type MessagingClient struct {
	mock.Mock
}

// Connect mocks an implementation of Connect
func (mc *MessagingClient) Connect() (err error) {
	args := mc.Called()

	return args.Error(0)
}

// ReadBatch mocks an implementation of ReadBatch
func (mc *MessagingClient) ReadBatch() (events []eulerbot.Event) {
	args := mc.Called()

	if e, ok := args.Get(0).([]eulerbot.Event); ok {
		return e
	}

	return nil
}

// Post mocks an implementation of Post. The attachments are passed to Called as a single slice
func (mc *MessagingClient) Post(targetID string, text string, attachments ...slack.Attachment) (result *eulerbot.PostResult, err error) {
	args := mc.Called(targetID, text, attachments)

	if r, ok := args.Get(0).(*eulerbot.PostResult); ok {
		result = r
	}

	return result, args.Error(1)
}

// DirectoryLoader holds a mock implementing eulerbot.DirectoryLoader
type DirectoryLoader struct {
	mock.Mock
}

// ListUsers mocks an implementation of ListUsers
func (ml *DirectoryLoader) ListUsers() (users []slack.User, err error) {
	args := ml.Called()

	if u, ok := args.Get(0).([]slack.User); ok {
		users = u
	}

	return users, args.Error(1)
}

// ListDirectMessageChannels mocks an implementation of ListDirectMessageChannels
func (ml *DirectoryLoader) ListDirectMessageChannels() (channelIDs []string, err error) {
	args := ml.Called()

	if c, ok := args.Get(0).([]string); ok {
		channelIDs = c
	}

	return channelIDs, args.Error(1)
}
