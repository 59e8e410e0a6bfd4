// Package assertpost provides testing functions to validate the messages posted by a responder
package assertpost

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

// HasText asserts that the only message posted to channelID is the expected text
func HasText(t *testing.T, posts map[string][]string, channelID string, text string) bool {
	if assert.Lenf(t, posts[channelID], 1, "Expected a single message posted to [%s] but got %v", channelID, posts[channelID]) {
		return assert.Equalf(t, text, posts[channelID][0], "Message text expected to be [%s] but was [%s]", text, posts[channelID][0])
	}
	return false
}

// HasTextContaining asserts that the only message posted to channelID contains the expected subString
func HasTextContaining(t *testing.T, posts map[string][]string, channelID string, subString string) bool {
	if assert.Lenf(t, posts[channelID], 1, "Expected a single message posted to [%s] but got %v", channelID, posts[channelID]) {
		return assert.Containsf(t, posts[channelID][0], subString, "Message expected to have text containing [%s] but its text [%s] didn't", subString, posts[channelID][0])
	}
	return false
}

// NothingPosted asserts that no message was posted at all
func NothingPosted(t *testing.T, posts map[string][]string) bool {
	count := 0
	for _, messages := range posts {
		count = count + len(messages)
	}

	return assert.Equalf(t, 0, count, "Expected no message posted but got %v", posts)
}
