package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/litkit"
	"github.com/vango-dev/litkit/internal/config"
	"github.com/vango-dev/litkit/internal/errors"
	"github.com/vango-dev/litkit/pkg/telemetry"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := &previewServer{
		cfg:       config.New(),
		telemetry: telemetry.New(telemetry.WithRegistry(prometheus.NewRegistry())),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	ts := httptest.NewServer(srv.routes())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestServeRoutes(t *testing.T) {
	ts := newTestServer(t)

	t.Run("healthz", func(t *testing.T) {
		code, body := get(t, ts.URL+"/healthz")
		if code != http.StatusOK || body != "ok" {
			t.Errorf("GET /healthz = %d %q", code, body)
		}
	})

	t.Run("gallery", func(t *testing.T) {
		code, body := get(t, ts.URL+"/")
		if code != http.StatusOK {
			t.Fatalf("GET / = %d", code)
		}
		for _, want := range []string{"<!DOCTYPE html>", "toast-manager-container", "internal-textarea", "popup-content"} {
			if !strings.Contains(body, want) {
				t.Errorf("gallery missing %q", want)
			}
		}
	})

	t.Run("metrics", func(t *testing.T) {
		get(t, ts.URL+"/")
		code, body := get(t, ts.URL+"/metrics")
		if code != http.StatusOK {
			t.Fatalf("GET /metrics = %d", code)
		}
		if !strings.Contains(body, `litkit_toasts_shown_total{type="success"}`) {
			t.Errorf("metrics missing toast counter:\n%s", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if code, _ := get(t, ts.URL+"/missing"); code != http.StatusNotFound {
			t.Errorf("GET /missing = %d, want 404", code)
		}
	})
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	cfgJSON := `{"render": {"title": "CLI gallery"}}`
	if err := os.WriteFile(filepath.Join(dir, config.JSONFileName), []byte(cfgJSON), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "render", "--config", dir, "--out", filepath.Join(dir, "site"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "index.html") {
		t.Errorf("output = %q", out)
	}

	html, err := os.ReadFile(filepath.Join(dir, "site", "index.html"))
	if err != nil {
		t.Fatalf("read index.html: %v", err)
	}
	if !strings.Contains(string(html), "<title>CLI gallery</title>") {
		t.Errorf("index.html missing configured title")
	}
}

func TestRenderCommandInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, config.JSONFileName), []byte(`{"serve": {"port": 99999}}`), 0644)

	_, err := execute(t, "render", "--config", dir)
	if errors.Code(err) != "E122" {
		t.Errorf("err = %v, want E122", err)
	}
}

func TestPlaceCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "flips above anchor",
			args: []string{"--viewport=1000x800", "--size=200x150", "--anchor=450,690,100,10"},
			want: "top=530 left=400 side=top\n",
		},
		{
			name: "below anchor",
			args: []string{"--viewport=1000x800", "--size=200x150", "--anchor=450,100,100,20"},
			want: "top=130 left=400 side=bottom\n",
		},
		{
			name: "centered without anchor",
			args: []string{"--viewport=1000x800", "--size=200x150"},
			want: "top=325 left=400 side=bottom\n",
		},
		{
			name: "json",
			args: []string{"--viewport=1000x800", "--size=200x150", "--anchor=450,690,100,10", "--json"},
			want: `{"left":400,"side":"top","top":530}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"place"}, tt.args...)...)
			if err != nil {
				t.Fatalf("place: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestPlaceCommandErrors(t *testing.T) {
	tests := [][]string{
		{"--size=200"},
		{"--size=axb", "--pointer=1,2"},
		{"--size=200x100", "--anchor=1,2,3"},
		{"--size=200x100", "--viewport=wide"},
	}
	for _, args := range tests {
		_, err := execute(t, append([]string{"place"}, args...)...)
		if errors.Code(err) != "E160" {
			t.Errorf("place %v: err = %v, want E160", args, err)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) != litkit.Version {
		t.Errorf("version = %q, want %q", out, litkit.Version)
	}
}

func TestNewLogger(t *testing.T) {
	cfg := config.New()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	var buf bytes.Buffer
	logger := newLogger(cfg, &buf)
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info record logged at warn level")
	}
	if !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("json output = %q", out)
	}
}
