// Package capture provides captors of the messages eulerbot and its integrations send to slack
package capture

import (
	"fmt"
	"github.com/eulerbot/eulerbot"
	"github.com/slack-go/slack"
	"sync"
)

// PostCaptor implements eulerbot.Poster and holds the messages posted to it keyed by
// target (channel or user) ID
type PostCaptor struct {
	sync.Mutex

	SentMessages map[string][]string
	Attachments  map[string][][]slack.Attachment

	// Err, when set, is returned by Post and nothing is captured
	Err error

	count int
}

// NewPostCaptor returns a new initialized PostCaptor instance
func NewPostCaptor() (pc *PostCaptor) {
	pc = new(PostCaptor)
	pc.SentMessages = make(map[string][]string)
	pc.Attachments = make(map[string][][]slack.Attachment)

	return pc
}

// Post captures the details of a posted message (the text, attachments and the target it's sent to)
func (pc *PostCaptor) Post(targetID string, text string, attachments ...slack.Attachment) (result *eulerbot.PostResult, err error) {
	pc.Lock()
	defer pc.Unlock()

	if pc.Err != nil {
		return nil, pc.Err
	}

	pc.count++
	pc.SentMessages[targetID] = append(pc.SentMessages[targetID], text)
	pc.Attachments[targetID] = append(pc.Attachments[targetID], attachments)

	return &eulerbot.PostResult{ChannelID: targetID, Timestamp: fmt.Sprintf("%d.000000", pc.count)}, nil
}

// Count returns the total number of captured messages
func (pc *PostCaptor) Count() int {
	pc.Lock()
	defer pc.Unlock()

	return pc.count
}
