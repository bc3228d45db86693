package litkit

import (
	"log/slog"

	"github.com/vango-dev/litkit/pkg/telemetry"
	"github.com/vango-dev/litkit/pkg/widget"
)

// Config is the application configuration.
type Config struct {
	// Logger is the structured logger shared by every widget.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Clock drives toast lifetimes. If nil, the wall clock is used.
	Clock widget.Clock

	// Root is the content root surface the toast container renders
	// into. If nil, the toast manager keeps an in-memory surface.
	Root widget.Surface

	// Telemetry receives bus, toast and dialog activity.
	// If nil, nothing is recorded.
	Telemetry *telemetry.Telemetry
}
