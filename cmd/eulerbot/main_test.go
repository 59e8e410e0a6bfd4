package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestRunFailureIsWrittenToLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "eulerbot.log")
	t.Setenv("SLACKBOT_LOG_FILE", logFile)
	t.Setenv("JIRA_SERVER", "://not-a-url")

	assert.Equal(t, 1, run())

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Error creating eulerbot")
}
