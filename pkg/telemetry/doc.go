// Package telemetry records Prometheus metrics and OpenTelemetry spans for
// litkit widgets.
//
// A Telemetry value plugs into the places where widgets report activity:
//
//	tel := telemetry.New(telemetry.WithRegistry(reg))
//	b := bus.New(bus.WithObserver(tel))
//	toasts := toast.New(toast.WithBus(b), toast.WithObserver(tel))
//	tel.WatchDialogs(b)
//
//	http.Handle("/metrics", tel.Handler())
//
// Metrics collected (namespace "litkit" by default):
//   - litkit_bus_emits_total: emits by event
//   - litkit_bus_deliveries_total: handler invocations by event
//   - litkit_bus_emit_duration_seconds: dispatch duration by event
//   - litkit_bus_handler_panics_total: recovered handler panics by event
//   - litkit_toasts_shown_total: toasts shown by type
//   - litkit_toasts_removed_total: toasts removed by type and reason
//   - litkit_toasts_active: toasts currently in the active list
//   - litkit_dialog_transitions_total: dialog transitions by direction
//   - litkit_dialogs_open: dialogs currently open
//
// Every dispatch also produces a span named "litkit.emit <event>" on the
// configured tracer provider, which defaults to the global one.
package telemetry
