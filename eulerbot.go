package eulerbot

import (
	"github.com/eulerbot/eulerbot/config"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"io"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"
)

// slackbotUserID is the id of the slack system user. Its messages are never processed
const slackbotUserID = "USLACKBOT"

// EulerBot runs the read/eval loop: it reads events from the real time messaging firehose,
// classifies message events and passes them on to the responders registered for their category
type EulerBot struct {
	name         string
	config       *viper.Viper
	client       MessagingClient
	directory    *UserDirectory
	identity     *IdentityResolver
	registry     *Registry
	pollInterval time.Duration
	birth        time.Time
	closers      []io.Closer

	running         atomic.Bool
	eventsReceived  atomic.Uint64
	eventsProcessed atomic.Uint64

	// Options overriding the defaults
	logger *log.Logger
	loader DirectoryLoader
	meter  metric.Meter

	log SLogger
	*instrumenter
}

// Option defines an option for an EulerBot
type Option func(*EulerBot)

// OptionLog sets a logger for eulerbot
func OptionLog(logger *log.Logger) Option {
	return func(b *EulerBot) {
		b.logger = logger
	}
}

// OptionLogWriter sets the destination of the default eulerbot logger
func OptionLogWriter(w io.Writer) Option {
	return func(b *EulerBot) {
		b.logger = NewDefaultLogger(w)
	}
}

// OptionMessagingClient sets the messaging client used instead of the default slack real time client
func OptionMessagingClient(client MessagingClient) Option {
	return func(b *EulerBot) {
		b.client = client
	}
}

// OptionDirectoryLoader sets the loader of the user directory. When unset, the messaging client
// is used if it implements DirectoryLoader
func OptionDirectoryLoader(loader DirectoryLoader) Option {
	return func(b *EulerBot) {
		b.loader = loader
	}
}

// OptionMeter sets the meter used to instrument eulerbot. The global meter provider is used otherwise
func OptionMeter(meter metric.Meter) Option {
	return func(b *EulerBot) {
		b.meter = meter
	}
}

// New creates a new EulerBot from its configuration. Responders are expected to be registered
// before calling Run
func New(v *viper.Viper, options ...Option) (b *EulerBot, err error) {
	b = new(EulerBot)
	b.config = config.LayerConfigWithDefaults(v)
	b.name = v.GetString(config.NameKey)
	b.pollInterval = v.GetDuration(config.PollIntervalKey)
	b.registry = NewRegistry()
	b.birth = time.Now()
	b.closers = make([]io.Closer, 0)

	for _, opt := range options {
		opt(b)
	}

	if b.logger == nil {
		b.logger = NewDefaultLogger(os.Stdout)
	}
	b.log = NewSLogger(b.logger, v.GetBool(config.DebugKey))

	if b.meter == nil {
		b.meter = otel.GetMeterProvider().Meter("github.com/eulerbot/eulerbot")
	}

	if b.instrumenter, err = newInstrumenter(b.name, b.meter); err != nil {
		return nil, errors.Wrap(err, "failed to create instruments")
	}

	if b.client == nil {
		sc := NewSlackClient(v, b.log, b.logger.Writer())
		b.client = sc
		b.closers = append(b.closers, sc)
	}

	if b.loader == nil {
		loader, ok := b.client.(DirectoryLoader)
		if !ok {
			return nil, errors.New("no directory loader set and the messaging client can't load the user directory")
		}

		b.loader = loader
	}

	if b.client, err = NewMessagingClientWithTelemetry(b.client, b.name, b.meter); err != nil {
		return nil, errors.Wrap(err, "failed to instrument messaging client")
	}

	b.directory = NewUserDirectory(v, b.loader, b.log)
	b.identity = NewIdentityResolver(b.name, b.directory, b.log)
	b.running.Store(true)

	b.log.Debugf("%s initialized", b.name)

	return b, nil
}

// RegisterResponder registers a responder for a category of message events. This should be
// invoked prior to calling Run
func (b *EulerBot) RegisterResponder(c Category, r Responder) {
	b.registry.Register(c, r)
	b.log.Printf("Registered responder [%s] for %s messages", r.Name(), c)
}

// Responders returns the responders registered for category c
func (b *EulerBot) Responders(c Category) []Responder {
	return b.registry.Get(c)
}

// Services returns the services made available to responders
func (b *EulerBot) Services() *BotServices {
	return &BotServices{Poster: b.client, Directory: b.directory, Identity: b.identity, Config: b.config, Log: b.log}
}

// Name returns the bot name
func (b *EulerBot) Name() string {
	return b.name
}

// Birth returns the time the bot was created
func (b *EulerBot) Birth() time.Time {
	return b.birth
}

// EventsReceived returns the number of message events read from the firehose
func (b *EulerBot) EventsReceived() uint64 {
	return b.eventsReceived.Load()
}

// EventsProcessed returns the number of message events dispatched to responders
func (b *EulerBot) EventsProcessed() uint64 {
	return b.eventsProcessed.Load()
}

// Running returns true until Stop is called
func (b *EulerBot) Running() bool {
	return b.running.Load()
}

// Stop asks the loop to terminate. The current iteration completes before Run returns
func (b *EulerBot) Stop() {
	b.running.Store(false)
}

// Close closes all closers of the bot (messaging client and responders)
func (b *EulerBot) Close() (err error) {
	for _, c := range b.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	return err
}

// Run connects to the real time messaging firehose and runs the read/eval loop until Stop is
// called or a termination signal is received. A connection failure isn't retried: the loop
// never starts and an error with ErrConnect as its cause is returned
func (b *EulerBot) Run() (err error) {
	b.log.Printf("Starting %s with [%d] registered responders", b.name, b.registry.Len())

	if err = b.client.Connect(); err != nil {
		b.log.Printf("Could not connect to the Slack Real Time Messaging API: %v", err)
		return errors.Wrap(ErrConnect, err.Error())
	}

	b.log.Printf("Connected to the Slack Real Time Messaging API")

	stopWatching := b.watchForTerminationSignal()
	defer stopWatching()

	for b.running.Load() {
		b.processBatch(b.client.ReadBatch())
		time.Sleep(b.pollInterval)
	}

	b.log.Printf("Stopped %s after receiving [%d] events and processing [%d] of them (up since %s)", b.name, b.EventsReceived(), b.EventsProcessed(), b.birth.Format(time.RFC3339))

	return nil
}

// watchForTerminationSignal waits for a SIGTERM or SIGINT in a go routine and stops the loop
// when one is received. The returned function stops the watch
func (b *EulerBot) watchForTerminationSignal() (stop func()) {
	tSignals := make(chan os.Signal, 1)
	done := make(chan struct{})

	signal.Notify(tSignals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-tSignals:
			b.log.Printf("Received termination signal [%s], stopping", sig)
			b.Stop()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(tSignals)
		close(done)
	}
}

// processBatch processes a batch of events in order. Only message events are counted and processed
func (b *EulerBot) processBatch(events []Event) {
	for _, e := range events {
		if !e.IsMessage() {
			b.log.Debugf("Ignoring [%s] event", e.Type())
			continue
		}

		b.eventsReceived.Add(1)
		b.recordReceived()

		if e.User() == slackbotUserID {
			b.log.Debugf("Ignoring message from slackbot")
			continue
		}

		botID := b.selfID()
		category := Classify(e, botID, b.directMessages())
		b.dispatch(e, category, botID)
	}
}

// dispatch passes a message event to every responder registered for its category, unless
// the message was sent by the bot itself
func (b *EulerBot) dispatch(e Event, c Category, botID string) {
	if botID != "" && e.User() == botID {
		b.log.Debugf("Ignoring message from user [%s] because that's \"us\"", e.User())
		return
	}

	b.log.Debugf("Received %s event", c)
	for _, r := range b.registry.Get(c) {
		b.update(r, e)
	}

	b.eventsProcessed.Add(1)
	b.recordProcessed(c)
}

// update calls the responder and logs its failure, if any. A failing responder never prevents
// the other responders from getting the event
func (b *EulerBot) update(r Responder, e Event) {
	var err error
	d := measure(func() {
		err = safeUpdate(r, e)
	})

	if err != nil {
		b.log.Printf("Responder [%s] failed to process event: %v", r.Name(), err)
	}

	b.recordResponderUpdate(r.Name(), d, err != nil)
}

// safeUpdate calls r.Update and converts a panic into an error
func safeUpdate(r Responder, e Event) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.Errorf("panic: %v", p)
		}
	}()

	return r.Update(e)
}

// selfID returns the bot's own user id or an empty string if it can't be resolved
func (b *EulerBot) selfID() (id string) {
	id, err := b.identity.SelfID()
	if err != nil {
		b.log.Printf("Unable to resolve own user id: %v", err)
		return ""
	}

	return id
}

// directMessages returns the current direct message channels or an empty set if they can't be loaded
func (b *EulerBot) directMessages() (dms DirectMessageSet) {
	dms, err := b.directory.DirectMessages()
	if err != nil {
		b.log.Printf("Unable to load direct message channels: %v", err)
		return NewDirectMessageSet()
	}

	return dms
}
