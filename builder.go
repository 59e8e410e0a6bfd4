package eulerbot

import (
	"github.com/spf13/viper"
	"io"
)

// ResponderFactory creates a responder with access to the bot services
type ResponderFactory func(services *BotServices) (r Responder, err error)

// Builder holds an eulerbot instance to build
type Builder struct {
	bot *EulerBot
	err error
}

// NewBot returns a new Builder used to set up a new eulerbot
func NewBot(v *viper.Viper, options ...Option) (eb *Builder) {
	eb = new(Builder)
	eb.bot, eb.err = New(v, options...)

	return eb
}

// WithResponder registers a responder for category c
func (eb *Builder) WithResponder(c Category, r Responder) *Builder {
	return eb.WithResponderErr(c, r, nil)
}

// WithResponderErr registers a responder that has a creation function returning (Responder, error)
func (eb *Builder) WithResponderErr(c Category, r Responder, err error) *Builder {
	if eb.err == nil && err != nil {
		eb.err = err
	}

	if eb.err != nil {
		return eb
	}

	eb.bot.RegisterResponder(c, r)

	return eb
}

// WithResponderCloserErr registers a responder that has a creation function returning
// (io.Closer, Responder, error). The closer is closed when the bot is closed
func (eb *Builder) WithResponderCloserErr(c Category, closer io.Closer, r Responder, err error) *Builder {
	if eb.err == nil && err != nil {
		eb.err = err
	}

	if eb.err != nil {
		return eb
	}

	eb.bot.RegisterResponder(c, r)

	if closer != nil {
		eb.bot.closers = append(eb.bot.closers, closer)
	}

	return eb
}

// WithConfigurableResponderErr registers a responder created from the bot services. This is
// how responders get the poster, the user directory and the configuration
func (eb *Builder) WithConfigurableResponderErr(c Category, factory ResponderFactory) *Builder {
	if eb.err != nil {
		return eb
	}

	r, err := factory(eb.bot.Services())

	return eb.WithResponderErr(c, r, err)
}

// Build returns the built eulerbot instance. If there was an error during
// setup, the error is returned along with a nil eulerbot
func (eb *Builder) Build() (b *EulerBot, err error) {
	if eb.err != nil {
		return nil, eb.err
	}

	return eb.bot, nil
}
