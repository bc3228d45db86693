package litkit

import (
	"log/slog"

	"github.com/vango-dev/litkit/pkg/autosize"
	"github.com/vango-dev/litkit/pkg/bus"
	"github.com/vango-dev/litkit/pkg/dialog"
	"github.com/vango-dev/litkit/pkg/popup"
	"github.com/vango-dev/litkit/pkg/ready"
	"github.com/vango-dev/litkit/pkg/toast"
)

// App is the application context shared by the widgets of one page.
type App struct {
	// Bus carries UI-wide signals between widgets.
	Bus *bus.Bus

	// Toasts is the page's toast manager.
	Toasts *toast.Manager

	// ViewTypes tracks the navigation mode and announces switches on Bus.
	ViewTypes *ViewTypeManager

	// Ready is marked once the page glue has finished setting up.
	Ready *ready.Latch

	logger      *slog.Logger
	stopDialogs func()
}

// New creates an application context.
func New(cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	busOpts := []bus.Option{bus.WithLogger(logger)}
	if cfg.Telemetry != nil {
		busOpts = append(busOpts, bus.WithObserver(cfg.Telemetry))
	}
	b := bus.New(busOpts...)

	toastOpts := []toast.Option{toast.WithBus(b), toast.WithLogger(logger)}
	if cfg.Clock != nil {
		toastOpts = append(toastOpts, toast.WithClock(cfg.Clock))
	}
	if cfg.Root != nil {
		toastOpts = append(toastOpts, toast.WithSurface(cfg.Root))
	}
	if cfg.Telemetry != nil {
		toastOpts = append(toastOpts, toast.WithObserver(cfg.Telemetry))
	}

	app := &App{
		Bus:       b,
		Toasts:    toast.New(toastOpts...),
		ViewTypes: NewViewTypeManager(b),
		Ready:     &ready.Latch{},
		logger:    logger,
	}

	if cfg.Telemetry != nil {
		stop, err := cfg.Telemetry.WatchDialogs(b)
		if err != nil {
			logger.Warn("dialog telemetry disabled", "error", err)
		} else {
			app.stopDialogs = stop
		}
	}

	return app
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// NewDialog creates a dialog wired to the app bus and logger. Options in
// opts are applied after the app defaults.
func (a *App) NewDialog(modal dialog.Modal, opts ...dialog.Option) *dialog.Dialog {
	base := []dialog.Option{dialog.WithBus(a.Bus), dialog.WithLogger(a.logger)}
	return dialog.New(modal, append(base, opts...)...)
}

// NewPopup creates a popup using the app logger.
func (a *App) NewPopup(opts ...popup.Option) *popup.Popup {
	base := []popup.Option{popup.WithLogger(a.logger)}
	return popup.New(append(base, opts...)...)
}

// NewTextInput creates an autosizing text input wired to the app bus and
// logger.
func (a *App) NewTextInput(opts ...autosize.Option) *autosize.Input {
	base := []autosize.Option{autosize.WithBus(a.Bus), autosize.WithLogger(a.logger)}
	return autosize.New(append(base, opts...)...)
}

// Close clears every toast, fails pending readiness waiters and destroys
// all listeners. The App must not be used afterwards.
func (a *App) Close() {
	if a.stopDialogs != nil {
		a.stopDialogs()
		a.stopDialogs = nil
	}
	a.Toasts.ClearAll()
	a.Ready.Clear()
	a.Bus.DestroyAll()
}
