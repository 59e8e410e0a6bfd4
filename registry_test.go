package eulerbot_test

import (
	"github.com/eulerbot/eulerbot"
	"github.com/eulerbot/eulerbot/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestEmptyRegistry(t *testing.T) {
	r := eulerbot.NewRegistry()

	for _, c := range eulerbot.Categories() {
		responders := r.Get(c)
		require.NotNil(t, responders)
		assert.Empty(t, responders)
	}

	assert.Equal(t, 0, r.Len())
}

func TestRegistryKeepsRegistrationOrder(t *testing.T) {
	r := eulerbot.NewRegistry()

	first := new(mocks.Responder)
	second := new(mocks.Responder)
	third := new(mocks.Responder)

	r.Register(eulerbot.Channel, first)
	r.Register(eulerbot.Mention, second)
	r.Register(eulerbot.Channel, third)

	assert.Equal(t, []eulerbot.Responder{first, third}, r.Get(eulerbot.Channel))
	assert.Equal(t, []eulerbot.Responder{second}, r.Get(eulerbot.Mention))
	assert.Empty(t, r.Get(eulerbot.Direct))
	assert.Equal(t, 3, r.Len())
}

func TestRegistryAllowsDuplicates(t *testing.T) {
	r := eulerbot.NewRegistry()
	responder := new(mocks.Responder)

	r.Register(eulerbot.Direct, responder)
	r.Register(eulerbot.Direct, responder)

	assert.Len(t, r.Get(eulerbot.Direct), 2)
}

func TestRegistryGetReturnsACopy(t *testing.T) {
	r := eulerbot.NewRegistry()
	r.Register(eulerbot.Channel, new(mocks.Responder))

	responders := r.Get(eulerbot.Channel)
	responders[0] = nil

	assert.NotNil(t, r.Get(eulerbot.Channel)[0])
}

func TestResponderFunc(t *testing.T) {
	var received eulerbot.Event
	f := eulerbot.ResponderFunc(func(e eulerbot.Event) error {
		received = e
		return errors.New("failed")
	})

	e := eulerbot.Event{"type": "message", "text": "hi"}
	err := f.Update(e)

	assert.EqualError(t, err, "failed")
	assert.Equal(t, e, received)
	assert.Equal(t, "func", f.Name())
}
