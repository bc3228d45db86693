package config

import (
	"encoding/json"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/litkit/internal/errors"
)

const (
	// JSONFileName is the JSON configuration file name.
	JSONFileName = "litkit.json"

	// YAMLFileName is the YAML configuration file name.
	YAMLFileName = "litkit.yaml"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default render output directory.
	DefaultOutput = "dist"

	// DefaultTitle is the default gallery page title.
	DefaultTitle = "litkit gallery"

	// DefaultMinHeight is the default autosize minimum height in pixels.
	DefaultMinHeight = 40

	// DefaultMaxHeight is the default autosize maximum height in pixels.
	DefaultMaxHeight = 200
)

// fileNames lists the configuration files in lookup order.
var fileNames = []string{JSONFileName, YAMLFileName, "litkit.yml"}

// Config represents a litkit project configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Serve contains preview server configuration.
	Serve ServeConfig `json:"serve" yaml:"serve"`

	// Render contains static render configuration.
	Render RenderConfig `json:"render" yaml:"render"`

	// Dialog contains dialog widget defaults.
	Dialog DialogConfig `json:"dialog" yaml:"dialog"`

	// Popup contains popup widget defaults.
	Popup PopupConfig `json:"popup" yaml:"popup"`

	// Autosize contains autosizing text input defaults.
	Autosize AutosizeConfig `json:"autosize" yaml:"autosize"`

	// Log contains logging configuration.
	Log LogConfig `json:"log" yaml:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServeConfig contains preview server settings.
type ServeConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty" yaml:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty" yaml:"port,omitempty"`

	// MetricsPath is where Prometheus metrics are served (default: "/metrics").
	MetricsPath string `json:"metricsPath,omitempty" yaml:"metricsPath,omitempty"`
}

// RenderConfig contains static render settings.
type RenderConfig struct {
	// Output is the directory index.html is written to.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Title is the page title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Pretty indents the generated HTML.
	Pretty bool `json:"pretty,omitempty" yaml:"pretty,omitempty"`
}

// DialogConfig contains dialog defaults.
type DialogConfig struct {
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Width string `json:"width,omitempty" yaml:"width,omitempty"`
}

// PopupConfig contains popup placement defaults. Zero values select the
// popup package defaults.
type PopupConfig struct {
	Gap    float64 `json:"gap,omitempty" yaml:"gap,omitempty"`
	Margin float64 `json:"margin,omitempty" yaml:"margin,omitempty"`
}

// AutosizeConfig contains autosizing text input defaults, in pixels.
type AutosizeConfig struct {
	MinHeight  float64 `json:"minHeight,omitempty" yaml:"minHeight,omitempty"`
	MaxHeight  float64 `json:"maxHeight,omitempty" yaml:"maxHeight,omitempty"`
	LineHeight float64 `json:"lineHeight,omitempty" yaml:"lineHeight,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from dir, trying litkit.json then litkit.yaml.
func Load(dir string) (*Config, error) {
	for _, name := range fileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E141").
		WithDetail("No " + JSONFileName + " or " + YAMLFileName + " found in " + dir).
		WithSuggestion("Create " + JSONFileName + " or run without a config file to use defaults")
}

// LoadFile reads configuration from path. The format follows the file
// extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No configuration found at " + path)
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := &Config{}
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that " + filepath.Base(path) + " is valid " + formatName(path))
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to path in the format its extension
// names.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return errors.New("E120").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
	if c.Serve.MetricsPath == "" {
		c.Serve.MetricsPath = "/metrics"
	}

	if c.Render.Output == "" {
		c.Render.Output = DefaultOutput
	}
	if c.Render.Title == "" {
		c.Render.Title = DefaultTitle
	}

	if c.Autosize.MinHeight == 0 {
		c.Autosize.MinHeight = DefaultMinHeight
	}
	if c.Autosize.MaxHeight == 0 {
		c.Autosize.MaxHeight = DefaultMaxHeight
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return errors.New("E122").
			WithDetail("serve.port must be between 0 and 65535")
	}
	if !strings.HasPrefix(c.Serve.MetricsPath, "/") {
		return errors.New("E122").
			WithDetail("serve.metricsPath must start with /")
	}
	if c.Popup.Gap < 0 || c.Popup.Margin < 0 {
		return errors.New("E122").
			WithDetail("popup.gap and popup.margin must not be negative")
	}
	if c.Autosize.MinHeight < 0 || c.Autosize.LineHeight < 0 {
		return errors.New("E122").
			WithDetail("autosize heights must not be negative")
	}
	if c.Autosize.MaxHeight < c.Autosize.MinHeight {
		return errors.New("E122").
			WithDetail("autosize.maxHeight must be at least autosize.minHeight")
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("E122").
			WithDetail("log.format must be text or json, got " + strconv.Quote(c.Log.Format))
	}
	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, errors.New("E122").
			WithDetail("log.level must be debug, info, warn or error, got " + strconv.Quote(c.Log.Level))
	}
	return level, nil
}

// Address returns the preview server listen address.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Serve.Host, strconv.Itoa(c.Serve.Port))
}

// URL returns the preview server URL.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// OutputPath returns the render output directory, resolved against the
// config directory.
func (c *Config) OutputPath() string {
	if filepath.IsAbs(c.Render.Output) {
		return c.Render.Output
	}
	return filepath.Join(c.Dir(), c.Render.Output)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	for _, name := range fileNames {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing a litkit config file.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E141").
				WithDetail("No litkit config found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadOrDefault loads the config from the project root above dir. When no
// config file exists it returns the defaults.
func LoadOrDefault(dir string) (*Config, error) {
	root, err := FindProjectRoot(dir)
	if err != nil {
		if errors.Code(err) == "E141" {
			return New(), nil
		}
		return nil, err
	}
	return Load(root)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func formatName(path string) string {
	if isYAML(path) {
		return "YAML"
	}
	return "JSON"
}
