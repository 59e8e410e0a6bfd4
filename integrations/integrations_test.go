package integrations_test

import (
	"github.com/eulerbot/eulerbot"
	"github.com/eulerbot/eulerbot/config"
	"github.com/eulerbot/eulerbot/test/capture"
	"github.com/spf13/viper"
	"io"
)

func newTestLogger() eulerbot.SLogger {
	return eulerbot.NewSLogger(eulerbot.NewDefaultLogger(io.Discard), true)
}

func newTestConfig() *viper.Viper {
	v := config.NewViperWithDefaults()
	v.Set(config.JiraProjectKeyKey, "TID")
	v.Set(config.JiraServerKey, "http://jira.dom")

	return v
}

func newPostCaptor() *capture.PostCaptor {
	return capture.NewPostCaptor()
}

func message(user string, channel string, text string) eulerbot.Event {
	return eulerbot.Event{"type": "message", "user": user, "channel": channel, "text": text}
}
