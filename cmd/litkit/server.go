package main

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vango-dev/litkit"
	"github.com/vango-dev/litkit/internal/config"
	"github.com/vango-dev/litkit/pkg/gallery"
	"github.com/vango-dev/litkit/pkg/telemetry"
)

// previewServer serves the gallery, a health check and metrics.
type previewServer struct {
	cfg       *config.Config
	telemetry *telemetry.Telemetry
	logger    *slog.Logger
}

// routes builds the chi router.
func (s *previewServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleGallery)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	r.Handle(s.cfg.Serve.MetricsPath, s.telemetry.Handler())

	return r
}

// handleGallery renders a fresh gallery per request.
func (s *previewServer) handleGallery(w http.ResponseWriter, r *http.Request) {
	app := litkit.New(litkit.Config{
		Logger:    s.logger.With("request_id", middleware.GetReqID(r.Context())),
		Telemetry: s.telemetry,
	})
	defer app.Close()

	page, err := gallery.New(app, s.cfg)
	if err != nil {
		s.logger.Error("gallery mount failed", "error", err)
		http.Error(w, "gallery unavailable", http.StatusInternalServerError)
		return
	}
	defer page.Unmount()

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		s.logger.Error("gallery render failed", "error", err)
		http.Error(w, "gallery unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// requestLogger logs one line per request.
func (s *previewServer) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
