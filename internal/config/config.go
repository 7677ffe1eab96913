package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level cashfaster.yaml configuration.
type Config struct {
	AdminBaseURL    string   `yaml:"admin_base_url"`
	AppBaseURL      string   `yaml:"app_base_url"`
	ListenAddr      string   `yaml:"listen_addr"`
	OutputPath      string   `yaml:"output_path"`
	LoanIDs         []int    `yaml:"loan_ids,omitempty"`
	HTTPTimeout     Duration `yaml:"http_timeout"`
	KeywordCacheTTL Duration `yaml:"keyword_cache_ttl"`
}

// Duration wraps time.Duration so YAML can carry values like "10s".
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Default returns a Config pointed at the production service endpoints.
func Default() *Config {
	return &Config{
		AdminBaseURL:    "https://admin.cashfaster.com.au",
		AppBaseURL:      "https://app.cashfaster.com.au",
		ListenAddr:      ":8080",
		OutputPath:      "all_loan_outputs.txt",
		HTTPTimeout:     Duration(10 * time.Second),
		KeywordCacheTTL: Duration(15 * time.Minute),
	}
}

// Load reads a cashfaster.yaml file over the defaults and applies
// environment overrides. A missing file just yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults plus env are enough to run.
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// applyEnv overrides config fields from the environment, loading a
// .env file first when one is present.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("CASHFASTER_ADMIN_URL"); v != "" {
		c.AdminBaseURL = v
	}
	if v := os.Getenv("CASHFASTER_APP_URL"); v != "" {
		c.AppBaseURL = v
	}
	if v := os.Getenv("CASHFASTER_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
}
