package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/litkit/pkg/telemetry"
)

func serveCmd(configDir *string) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the gallery preview server",
		Long: `Start a local server that renders the widget gallery.

Routes:
  /          the gallery page, rendered per request
  /healthz   liveness check
  /metrics   Prometheus metrics (path from serve.metricsPath)

Examples:
  litkit serve
  litkit serve --port=8080
  litkit serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configDir)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Serve.Port = port
			}
			if host != "" {
				cfg.Serve.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			srv := &previewServer{
				cfg:       cfg,
				telemetry: telemetry.New(telemetry.WithRegistry(reg)),
				logger:    newLogger(cfg, cmd.ErrOrStderr()),
			}

			out := cmd.OutOrStdout()
			printBanner(out)
			fmt.Fprintln(out, "  serve")
			fmt.Fprintln(out)
			info(out, "Gallery: %s", cfg.URL())
			info(out, "Metrics: %s%s", cfg.URL(), cfg.Serve.MetricsPath)
			fmt.Fprintln(out)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return listen(ctx, cfg.Address(), srv)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")

	return cmd
}

// listen serves until ctx is done, then shuts down gracefully.
func listen(ctx context.Context, addr string, srv *previewServer) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	srv.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
