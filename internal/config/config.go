// Package config loads the conversion service configuration from YAML.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/jacoelho/xml2json"
)

// Config is the full service configuration.
type Config struct {
	Server  Server  `yaml:"server"`
	Log     Log     `yaml:"log"`
	Convert Convert `yaml:"convert"`
}

// Server configures the HTTP listener and upload handling.
type Server struct {
	Listen          string        `yaml:"listen"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Convert configures document conversion limits. Zero values select the
// library defaults.
type Convert struct {
	MaxDepth int `yaml:"max_depth"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `yaml:"level"`
	Encoding    string `yaml:"encoding"`
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: Server{
			Listen:          ":8000",
			AllowedOrigins:  []string{"http://localhost:3000"},
			MaxUploadBytes:  10 << 20,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: Log{
			Level:    "info",
			Encoding: "json",
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML data over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode yaml")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Listen) == "" {
		return errors.New("server.listen must not be empty")
	}
	if c.Server.MaxUploadBytes <= 0 {
		return errors.Errorf("server.max_upload_bytes must be > 0, got %d", c.Server.MaxUploadBytes)
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return errors.New("server timeouts must be >= 0")
	}
	for _, origin := range c.Server.AllowedOrigins {
		if strings.TrimSpace(origin) == "" {
			return errors.New("server.allowed_origins must not contain empty entries")
		}
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return errors.Errorf("log.encoding must be json or console, got %q", c.Log.Encoding)
	}
	if err := c.ConvertOptions().Validate(); err != nil {
		return errors.Wrap(err, "convert")
	}
	return nil
}

// ConvertOptions returns the library options for the convert section.
func (c Config) ConvertOptions() xml2json.Options {
	return xml2json.NewOptions().
		WithMaxDepth(c.Convert.MaxDepth).
		WithMaxInputBytes(c.Server.MaxUploadBytes)
}
