package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/litkit/internal/config"
	"github.com/vango-dev/litkit/internal/errors"
)

// Build information set at build time.
var (
	commit = "none"
	date   = "unknown"
)

const banner = `
  ╦  ┬┌┬┐┬┌─┬┌┬┐
  ║  │ │ ├┴┐│ │
  ╩═╝┴ ┴ ┴ ┴┴ ┴
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ke *errors.KitError
		if stderrors.As(err, &ke) {
			fmt.Fprint(os.Stderr, ke.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configDir string

	rootCmd := &cobra.Command{
		Use:   "litkit",
		Short: "Widget toolkit for server-rendered Go pages",
		Long: `litkit renders and previews the litkit widget gallery.

The gallery mounts every widget on one page:

  • Toast notifications with a timed lifecycle
  • Modal dialog driven by its open property
  • Anchored popup with viewport-aware placement
  • Autosizing multi-line text input`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", ".", "Directory to search for litkit.json or litkit.yaml")

	rootCmd.AddCommand(
		renderCmd(&configDir),
		serveCmd(&configDir),
		placeCmd(),
		versionCmd(),
	)
	return rootCmd
}

// loadConfig loads and validates the project config, falling back to
// defaults when no file exists.
func loadConfig(dir string) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(dir)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the logger described by cfg.Log.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level, err := cfg.LogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// printBanner prints the litkit ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
