package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus collectors.
type metrics struct {
	emitsTotal        *prometheus.CounterVec
	deliveriesTotal   *prometheus.CounterVec
	emitDuration      *prometheus.HistogramVec
	handlerPanics     *prometheus.CounterVec
	toastsShown       *prometheus.CounterVec
	toastsRemoved     *prometheus.CounterVec
	toastsActive      prometheus.Gauge
	dialogTransitions *prometheus.CounterVec
	dialogsOpen       prometheus.Gauge
}

// newMetrics creates and registers the collectors.
func newMetrics(config Config) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		emitsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "bus_emits_total",
			Help:        "Total number of bus emits that reached at least one listener",
			ConstLabels: config.ConstLabels,
		}, []string{"event"}),

		deliveriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "bus_deliveries_total",
			Help:        "Total number of handler invocations",
			ConstLabels: config.ConstLabels,
		}, []string{"event"}),

		emitDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "bus_emit_duration_seconds",
			Help:        "Synchronous dispatch duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"event"}),

		handlerPanics: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "bus_handler_panics_total",
			Help:        "Total number of recovered handler panics",
			ConstLabels: config.ConstLabels,
		}, []string{"event"}),

		toastsShown: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_shown_total",
			Help:        "Total number of toasts shown",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),

		toastsRemoved: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_removed_total",
			Help:        "Total number of toasts removed",
			ConstLabels: config.ConstLabels,
		}, []string{"type", "reason"}),

		toastsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_active",
			Help:        "Number of toasts in the active list",
			ConstLabels: config.ConstLabels,
		}),

		dialogTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dialog_transitions_total",
			Help:        "Total number of dialog open and close transitions",
			ConstLabels: config.ConstLabels,
		}, []string{"direction"}),

		dialogsOpen: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dialogs_open",
			Help:        "Number of open dialogs",
			ConstLabels: config.ConstLabels,
		}),
	}
}
