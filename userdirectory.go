package eulerbot

import (
	"github.com/eulerbot/eulerbot/config"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/slack-go/slack"
	"github.com/spf13/viper"
	"strings"
)

const usersCacheKey = "slack.users"

// UserDirectory gives access to the slack users and direct message channels. The user list is
// cached for the configured time-to-live while the direct message channels are loaded on
// every call since they determine the classification of every event
type UserDirectory struct {
	loader     DirectoryLoader
	log        SLogger
	usersCache *expirable.LRU[string, []slack.User]
}

// NewUserDirectory creates a new UserDirectory loading data with loader
func NewUserDirectory(v *viper.Viper, loader DirectoryLoader, logger SLogger) (ud *UserDirectory) {
	ud = new(UserDirectory)
	ud.loader = loader
	ud.log = logger
	ud.usersCache = expirable.NewLRU[string, []slack.User](1, nil, v.GetDuration(config.UserCacheTTLKey))

	return ud
}

// Users returns all known slack users
func (ud *UserDirectory) Users() (users []slack.User, err error) {
	if users, ok := ud.usersCache.Get(usersCacheKey); ok {
		ud.log.Debugf("Returning [%d] cached users", len(users))
		return users, nil
	}

	ud.log.Debugf("No valid cached users, requesting from slack")
	users, err = ud.loader.ListUsers()
	if err != nil {
		return nil, err
	}

	ud.usersCache.Add(usersCacheKey, users)

	return users, nil
}

// FindByEmail returns the user with the given profile email
func (ud *UserDirectory) FindByEmail(email string) (user slack.User, found bool, err error) {
	users, err := ud.Users()
	if err != nil {
		return slack.User{}, false, err
	}

	for _, u := range users {
		if email != "" && strings.EqualFold(u.Profile.Email, email) {
			return u, true, nil
		}
	}

	return slack.User{}, false, nil
}

// FindByName returns the first user whose name contains name
func (ud *UserDirectory) FindByName(name string) (user slack.User, found bool, err error) {
	users, err := ud.Users()
	if err != nil {
		return slack.User{}, false, err
	}

	for _, u := range users {
		if name != "" && strings.Contains(u.Name, name) {
			return u, true, nil
		}
	}

	return slack.User{}, false, nil
}

// DirectMessages returns the current set of direct message channels with the bot. This is
// never cached
func (ud *UserDirectory) DirectMessages() (dms DirectMessageSet, err error) {
	channelIDs, err := ud.loader.ListDirectMessageChannels()
	if err != nil {
		return nil, err
	}

	return NewDirectMessageSet(channelIDs...), nil
}

// Invalidate drops the cached user list
func (ud *UserDirectory) Invalidate() {
	ud.usersCache.Purge()
}
