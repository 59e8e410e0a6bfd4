package eulerbot

import (
	"context"
	"time"
	"unicode"

	"github.com/slack-go/slack"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var messagingClientMethods = []string{"Connect", "ReadBatch", "Post"}

// MessagingClientWithTelemetry implements MessagingClient interface with all methods wrapped
// with open telemetry metrics
type MessagingClientWithTelemetry struct {
	base                     MessagingClient
	attrs                    metric.MeasurementOption
	methodCounters           map[string]metric.Int64Counter
	errCounters              map[string]metric.Int64Counter
	methodTimeValueRecorders map[string]metric.Int64Histogram
}

// NewMessagingClientWithTelemetry returns an instance of the MessagingClient decorated with open telemetry timing and count metrics
func NewMessagingClientWithTelemetry(base MessagingClient, name string, meter metric.Meter) (mc MessagingClientWithTelemetry, err error) {
	mc = MessagingClientWithTelemetry{base: base, attrs: metric.WithAttributes(attribute.String("name", name))}

	if mc.methodCounters, err = newMessagingClientMethodCounters("Calls", meter); err != nil {
		return mc, err
	}

	if mc.errCounters, err = newMessagingClientMethodCounters("Errors", meter); err != nil {
		return mc, err
	}

	if mc.methodTimeValueRecorders, err = newMessagingClientMethodTimeValueRecorders(meter); err != nil {
		return mc, err
	}

	return mc, nil
}

func newMessagingClientMethodTimeValueRecorders(meter metric.Meter) (recorders map[string]metric.Int64Histogram, err error) {
	recorders = make(map[string]metric.Int64Histogram)

	for _, method := range messagingClientMethods {
		n := []rune("MessagingClient_" + method + "_ProcessingTimeMillis")
		n[0] = unicode.ToLower(n[0])

		if recorders[method], err = meter.Int64Histogram(string(n), metric.WithUnit("ms")); err != nil {
			return nil, err
		}
	}

	return recorders, nil
}

func newMessagingClientMethodCounters(suffix string, meter metric.Meter) (counters map[string]metric.Int64Counter, err error) {
	counters = make(map[string]metric.Int64Counter)

	for _, method := range messagingClientMethods {
		n := []rune("MessagingClient_" + method + "_" + suffix)
		n[0] = unicode.ToLower(n[0])

		if counters[method], err = meter.Int64Counter(string(n)); err != nil {
			return nil, err
		}
	}

	return counters, nil
}

// record updates the metrics of a method call that started at since
func (_d MessagingClientWithTelemetry) record(method string, since time.Time, err error) {
	if err != nil {
		_d.errCounters[method].Add(context.Background(), 1, _d.attrs)
	}

	_d.methodCounters[method].Add(context.Background(), 1, _d.attrs)
	_d.methodTimeValueRecorders[method].Record(context.Background(), time.Since(since).Milliseconds(), _d.attrs)
}

// Connect implements MessagingClient
func (_d MessagingClientWithTelemetry) Connect() (err error) {
	_since := time.Now()
	defer func() {
		_d.record("Connect", _since, err)
	}()
	return _d.base.Connect()
}

// ReadBatch implements MessagingClient
func (_d MessagingClientWithTelemetry) ReadBatch() (events []Event) {
	_since := time.Now()
	defer func() {
		_d.record("ReadBatch", _since, nil)
	}()
	return _d.base.ReadBatch()
}

// Post implements MessagingClient
func (_d MessagingClientWithTelemetry) Post(targetID string, text string, attachments ...slack.Attachment) (result *PostResult, err error) {
	_since := time.Now()
	defer func() {
		_d.record("Post", _since, err)
	}()
	return _d.base.Post(targetID, text, attachments...)
}
