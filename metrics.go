package eulerbot

import (
	"context"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"time"
)

// instrumenter holds the core eulerbot metrics
type instrumenter struct {
	appName string

	eventsReceived        metric.Int64Counter
	eventsProcessed       metric.Int64Counter
	responderErrors       metric.Int64Counter
	responderLatencyMilli metric.Int64Histogram

	defaultAttrs metric.MeasurementOption
}

// newInstrumenter creates a new core instrumenter
func newInstrumenter(appName string, meter metric.Meter) (ins *instrumenter, err error) {
	ins = new(instrumenter)
	ins.appName = appName
	ins.defaultAttrs = metric.WithAttributes(attribute.String("name", appName))

	if ins.eventsReceived, err = meter.Int64Counter("eventsReceived", metric.WithDescription("Message events read from the firehose")); err != nil {
		return nil, err
	}

	if ins.eventsProcessed, err = meter.Int64Counter("eventsProcessed", metric.WithDescription("Message events dispatched to responders")); err != nil {
		return nil, err
	}

	if ins.responderErrors, err = meter.Int64Counter("responderErrors", metric.WithDescription("Responder updates that failed or panicked")); err != nil {
		return nil, err
	}

	if ins.responderLatencyMilli, err = meter.Int64Histogram("responderProcessingTimeMillis", metric.WithUnit("ms")); err != nil {
		return nil, err
	}

	return ins, nil
}

func (ins *instrumenter) recordReceived() {
	ins.eventsReceived.Add(context.Background(), 1, ins.defaultAttrs)
}

func (ins *instrumenter) recordProcessed(c Category) {
	ins.eventsProcessed.Add(context.Background(), 1, metric.WithAttributes(attribute.String("name", ins.appName), attribute.String("category", c.String())))
}

// recordResponderUpdate records the processing time and outcome of a responder update
func (ins *instrumenter) recordResponderUpdate(responder string, d time.Duration, failed bool) {
	attrs := metric.WithAttributes(attribute.String("name", ins.appName), attribute.String("responder", responder))

	ins.responderLatencyMilli.Record(context.Background(), d.Milliseconds(), attrs)
	if failed {
		ins.responderErrors.Add(context.Background(), 1, attrs)
	}
}

type timed func()

// measure returns the execution duration of a timed function
func measure(operation timed) (d time.Duration) {
	before := time.Now()

	operation()

	return time.Since(before)
}
