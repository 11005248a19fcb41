// Package config loads the dashboard configuration from defaults, an
// optional YAML file, an optional .env file and DESDE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable. Keys follow the field
// names, e.g. DESDE_DATA_PATH or DESDE_SERVER_READ_TIMEOUT.
const EnvPrefix = "DESDE"

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Data    DataConfig    `yaml:"data"`
	Chart   ChartConfig   `yaml:"chart"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Addr            string        `yaml:"addr" split_words:"true"`
	ReadTimeout     time.Duration `yaml:"read_timeout" split_words:"true"`
	WriteTimeout    time.Duration `yaml:"write_timeout" split_words:"true"`
	RequestTimeout  time.Duration `yaml:"request_timeout" split_words:"true"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" split_words:"true"`
}

// DataConfig locates the listings workbook
type DataConfig struct {
	Path  string `yaml:"path" split_words:"true"`
	Sheet string `yaml:"sheet" split_words:"true"`
	Range string `yaml:"range" split_words:"true"`
}

// ChartConfig contains chart presentation settings
type ChartConfig struct {
	MaxLabelChars int `yaml:"max_label_chars" split_words:"true"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level       string `yaml:"level" split_words:"true"`
	Development bool   `yaml:"development" split_words:"true"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8501",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Data: DataConfig{
			Path: "Consolidado_Unidades.xlsx",
		},
		Chart: ChartConfig{
			MaxLabelChars: 9,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration. Later sources override earlier ones:
// defaults, the YAML file at configPath (skipped when empty), then the
// environment, which a .env file in the working directory may populate.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		if err := loadFromFile(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	// Fields without a matching variable keep their current value.
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile overlays the YAML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Data.Path) == "" {
		return fmt.Errorf("data path must be set")
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("server address must be set")
	}

	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server read and write timeouts must be positive")
	}

	if c.Server.RequestTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server request and shutdown timeouts must be positive")
	}

	if c.Chart.MaxLabelChars < 1 {
		return fmt.Errorf("max label chars must be at least 1, got %d", c.Chart.MaxLabelChars)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}

	return nil
}
