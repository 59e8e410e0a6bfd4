package eulerbot

import (
	"github.com/spf13/viper"
)

// BotServices represents the services made available to responders requiring the use of the
// slack api and/or details on users (i.e. the email of an on-call engineer)
type BotServices struct {
	// Poster sends messages to slack
	Poster Poster
	// Directory gives access to the slack users
	Directory *UserDirectory
	// Identity resolves the bot's own user id
	Identity *IdentityResolver
	// Config is the full eulerbot configuration
	Config *viper.Viper
	// Log is the eulerbot logger
	Log SLogger
}
