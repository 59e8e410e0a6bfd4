package eulerbot

import (
	"fmt"
	"strings"
)

// Category classifies a message event relative to the bot
type Category int

// Message categories. Every message event belongs to exactly one of them
const (
	// Direct is for messages sent on a direct message channel with the bot
	Direct Category = iota
	// Mention is for channel messages that @mention the bot
	Mention
	// Channel is for every other channel message
	Channel
)

var categoryNames = map[Category]string{
	Direct:  "direct",
	Mention: "mention",
	Channel: "channel",
}

// String returns the category name
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}

	return fmt.Sprintf("category(%d)", int(c))
}

// Categories returns all categories
func Categories() []Category {
	return []Category{Direct, Mention, Channel}
}

// DirectMessageSet holds the identifiers of the direct message channels open with the bot
type DirectMessageSet map[string]struct{}

// NewDirectMessageSet creates a DirectMessageSet from a list of channel identifiers
func NewDirectMessageSet(channelIDs ...string) (dms DirectMessageSet) {
	dms = make(DirectMessageSet, len(channelIDs))
	for _, id := range channelIDs {
		dms[id] = struct{}{}
	}

	return dms
}

// Contains returns true if channelID is a direct message channel with the bot
func (dms DirectMessageSet) Contains(channelID string) bool {
	if channelID == "" {
		return false
	}

	_, ok := dms[channelID]
	return ok
}

// MentionToken returns the token slack inserts in a message's text when userID is @mentioned
func MentionToken(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

// Classify returns the category of a message event. The rules are the following, first match wins:
// 	1. If the message is on a direct message channel with the bot, it's Direct
// 	2. If the message text mentions the bot (<@botID>), it's a Mention
// 	3. Anything else is Channel
//
// Direct messages are checked first since a channel id match is unambiguous while the
// mention is a substring match that could also appear in a direct message
func Classify(e Event, botID string, dms DirectMessageSet) Category {
	if dms.Contains(e.Channel()) {
		return Direct
	}

	if botID != "" && strings.Contains(e.Text(), MentionToken(botID)) {
		return Mention
	}

	return Channel
}
