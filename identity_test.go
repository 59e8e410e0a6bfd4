package eulerbot_test

import (
	"bytes"
	"github.com/eulerbot/eulerbot"
	"github.com/eulerbot/eulerbot/config"
	"github.com/eulerbot/eulerbot/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestSelfIDIsResolvedOnce(t *testing.T) {
	loader := new(mocks.DirectoryLoader)
	loader.On("ListUsers").Return(newTestUsers(), nil)

	ud := eulerbot.NewUserDirectory(config.NewViperWithDefaults(), loader, newTestLogger())
	ir := eulerbot.NewIdentityResolver("eulerbot", ud, newTestLogger())

	id, err := ir.SelfID()
	require.NoError(t, err)
	assert.Equal(t, "BOT", id)

	ud.Invalidate()

	id, err = ir.SelfID()
	require.NoError(t, err)
	assert.Equal(t, "BOT", id)

	loader.AssertNumberOfCalls(t, "ListUsers", 1)
}

func TestSelfIDNotFound(t *testing.T) {
	loader := new(mocks.DirectoryLoader)
	loader.On("ListUsers").Return(newTestUsers(), nil)

	ud := eulerbot.NewUserDirectory(config.NewViperWithDefaults(), loader, newTestLogger())
	ir := eulerbot.NewIdentityResolver("SlackBot", ud, newTestLogger())

	_, err := ir.SelfID()
	assert.EqualError(t, err, "no user named [SlackBot] found")
}

func TestSelfIDLookupFailure(t *testing.T) {
	loader := new(mocks.DirectoryLoader)
	loader.On("ListUsers").Return(nil, errors.New("slack down"))

	ud := eulerbot.NewUserDirectory(config.NewViperWithDefaults(), loader, newTestLogger())
	ir := eulerbot.NewIdentityResolver("eulerbot", ud, newTestLogger())

	_, err := ir.SelfID()
	require.Error(t, err)
	assert.Equal(t, "slack down", errors.Cause(err).Error())
}

func TestSelfIDInvalidate(t *testing.T) {
	loader := new(mocks.DirectoryLoader)
	loader.On("ListUsers").Return(newTestUsers(), nil)

	ud := eulerbot.NewUserDirectory(config.NewViperWithDefaults(), loader, newTestLogger())
	ir := eulerbot.NewIdentityResolver("eulerbot", ud, newTestLogger())

	_, err := ir.SelfID()
	require.NoError(t, err)

	ir.Invalidate()
	ud.Invalidate()

	id, err := ir.SelfID()
	require.NoError(t, err)
	assert.Equal(t, "BOT", id)

	loader.AssertNumberOfCalls(t, "ListUsers", 2)
}

func TestUnresolvedSelfIDLogsOnlyInDebug(t *testing.T) {
	loader := new(mocks.DirectoryLoader)
	loader.On("ListUsers").Return(newTestUsers(), nil)

	var logs bytes.Buffer
	ud := eulerbot.NewUserDirectory(config.NewViperWithDefaults(), loader, newTestLogger())
	ir := eulerbot.NewIdentityResolver("SlackBot", ud, eulerbot.NewSLogger(eulerbot.NewDefaultLogger(&logs), false))

	for i := 0; i < 3; i++ {
		_, err := ir.SelfID()
		require.Error(t, err)
	}

	assert.Empty(t, logs.String())
}
