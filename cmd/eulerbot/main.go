// Command eulerbot runs the eulerbot slack bot with the jira issue linker and the channel
// support responders listening to channel messages. Configuration comes from the environment
// (see the config package)
package main

import (
	"github.com/eulerbot/eulerbot"
	"github.com/eulerbot/eulerbot/config"
	"github.com/eulerbot/eulerbot/integrations"
	"gopkg.in/natefinch/lumberjack.v2"
	"io"
	"log"
	"os"
)

const (
	logFileMaxSizeMegabytes = 50
	logFileMaxBackups       = 5
	logFileMaxAgeDays       = 30
)

func main() {
	os.Exit(run())
}

// run starts eulerbot and returns the process exit code once it stops
func run() (code int) {
	v, err := config.NewViperFromEnv()
	if err != nil {
		log.Printf("Error loading configuration: %v", err)
		return 1
	}

	var w io.Writer = os.Stdout
	if logFile := v.GetString(config.LogFileKey); logFile != "" {
		rotated := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    logFileMaxSizeMegabytes,
			MaxBackups: logFileMaxBackups,
			MaxAge:     logFileMaxAgeDays,
			Compress:   true,
		}
		defer rotated.Close()

		w = io.MultiWriter(os.Stdout, rotated)
	}

	logger := eulerbot.NewDefaultLogger(w)

	bot, err := eulerbot.NewBot(v, eulerbot.OptionLog(logger)).
		WithConfigurableResponderErr(eulerbot.Channel, integrations.NewOpsGenieChannelSupport).
		WithConfigurableResponderErr(eulerbot.Channel, integrations.NewJiraIssueLinker).
		Build()
	if err != nil {
		logger.Printf("Error creating eulerbot: %v", err)
		return 1
	}
	defer bot.Close()

	if err = bot.Run(); err != nil {
		logger.Printf("Error running eulerbot: %v", err)
		return 1
	}

	return 0
}
