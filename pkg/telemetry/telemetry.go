package telemetry

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/litkit/pkg/bus"
	"github.com/vango-dev/litkit/pkg/dialog"
	"github.com/vango-dev/litkit/pkg/toast"
)

// Telemetry records metrics and spans. It implements bus.Observer and
// toast.Observer.
type Telemetry struct {
	config  Config
	metrics *metrics
	tracer  trace.Tracer
}

var (
	_ bus.Observer   = (*Telemetry)(nil)
	_ toast.Observer = (*Telemetry)(nil)
)

// New creates Telemetry and registers its collectors. Registering twice
// on the same registry panics, as with any Prometheus collector.
func New(opts ...Option) *Telemetry {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Telemetry{
		config:  config,
		metrics: newMetrics(config),
		tracer:  config.tracer(),
	}
}

// ObserveEmit implements bus.Observer.
func (t *Telemetry) ObserveEmit(info bus.EmitInfo) {
	t.metrics.emitsTotal.WithLabelValues(info.Event).Inc()
	t.metrics.deliveriesTotal.WithLabelValues(info.Event).Add(float64(info.Delivered))
	t.metrics.emitDuration.WithLabelValues(info.Event).Observe(info.Duration.Seconds())

	_, span := t.tracer.Start(
		context.Background(),
		fmt.Sprintf("litkit.emit %s", info.Event),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithTimestamp(info.Start),
		trace.WithAttributes(
			attribute.String("litkit.event", info.Event),
			attribute.Int("litkit.listeners", info.Listeners),
			attribute.Int("litkit.delivered", info.Delivered),
			attribute.Int("litkit.panics", info.Panics),
		),
	)
	if info.Panics > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%d handler panics", info.Panics))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End(trace.WithTimestamp(info.Start.Add(info.Duration)))
}

// ObservePanic implements bus.Observer.
func (t *Telemetry) ObservePanic(event string, _ any) {
	t.metrics.handlerPanics.WithLabelValues(event).Inc()
}

// ToastShown implements toast.Observer.
func (t *Telemetry) ToastShown(typ toast.Type) {
	t.metrics.toastsShown.WithLabelValues(string(typ)).Inc()
	t.metrics.toastsActive.Inc()
}

// ToastRemoved implements toast.Observer.
func (t *Telemetry) ToastRemoved(typ toast.Type, reason toast.Reason) {
	t.metrics.toastsRemoved.WithLabelValues(string(typ), string(reason)).Inc()
	t.metrics.toastsActive.Dec()
}

// WatchDialogs subscribes to dialog transitions on b. The returned
// function unsubscribes.
func (t *Telemetry) WatchDialogs(b *bus.Bus) (func(), error) {
	opened, err := bus.Subscribe(b, dialog.Opened, func(dialog.Event) {
		t.metrics.dialogTransitions.WithLabelValues("open").Inc()
		t.metrics.dialogsOpen.Inc()
	})
	if err != nil {
		return nil, err
	}
	closed, err := bus.Subscribe(b, dialog.Closed, func(dialog.Event) {
		t.metrics.dialogTransitions.WithLabelValues("close").Inc()
		t.metrics.dialogsOpen.Dec()
	})
	if err != nil {
		opened.Unregister()
		return nil, err
	}
	return func() {
		opened.Unregister()
		closed.Unregister()
	}, nil
}

// Handler serves the metrics of the configured registry.
func (t *Telemetry) Handler() http.Handler {
	if g, ok := t.config.Registry.(prometheus.Gatherer); ok {
		return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}
