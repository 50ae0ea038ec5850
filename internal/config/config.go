package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yingtu35/link-crawler/internal/linkcrawler"
	"github.com/yingtu35/link-crawler/pkg/domain"
)

// Config captures one link-check run.
type Config struct {
	BaseURL            string       `yaml:"base_url"`
	Path               string       `yaml:"path"`
	Relative           bool         `yaml:"relative"`
	Scope              string       `yaml:"scope"`
	MaxConcurrency     int          `yaml:"max_concurrency"`
	RequestsPerSecond  float64      `yaml:"requests_per_second"`
	Timeout            Duration     `yaml:"timeout"`
	Retries            int          `yaml:"retries"`
	RetryBackoff       Duration     `yaml:"retry_backoff"`
	InsecureSkipVerify bool         `yaml:"insecure_skip_verify"`
	MaxBodyBytes       int64        `yaml:"max_body_bytes"`
	UserAgent          string       `yaml:"user_agent"`
	Render             bool         `yaml:"render"`
	Export             ExportConfig `yaml:"export"`
}

// ExportConfig selects an optional report export.
type ExportConfig struct {
	Format   string `yaml:"format"`
	Filename string `yaml:"filename"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Path:               "/",
		Relative:           true,
		MaxConcurrency:     linkcrawler.MaxConcurrency,
		Timeout:            DurationFrom(linkcrawler.DefaultTimeout * time.Second),
		Retries:            linkcrawler.DefaultRetries,
		RetryBackoff:       DurationFrom(linkcrawler.DefaultRetryBackoff),
		InsecureSkipVerify: true,
		MaxBodyBytes:       linkcrawler.DefaultMaxBodyBytes,
		UserAgent:          linkcrawler.DefaultUserAgent,
		Export:             ExportConfig{Filename: "links"},
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks the values a run cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if err := domain.ValidateBaseURL(c.BaseURL); err != nil {
		errs = append(errs, fmt.Errorf("base_url: %w", err))
	}
	if _, err := linkcrawler.ParseSelector(c.Scope); err != nil {
		errs = append(errs, fmt.Errorf("scope: %w", err))
	}
	if c.Retries < 0 {
		errs = append(errs, errors.New("retries must not be negative"))
	}
	if c.Timeout.Duration <= 0 {
		errs = append(errs, errors.New("timeout must be positive"))
	}
	if c.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("requests_per_second must not be negative"))
	}
	return errors.Join(errs...)
}

// CrawlerOptions converts the configuration into linkcrawler options.
func (c *Config) CrawlerOptions() linkcrawler.Options {
	return linkcrawler.Options{
		BaseURL:            c.BaseURL,
		MaxConcurrency:     c.MaxConcurrency,
		RequestsPerSecond:  c.RequestsPerSecond,
		Timeout:            c.Timeout.Duration,
		Retries:            c.Retries,
		RetryBackoff:       c.RetryBackoff.Duration,
		InsecureSkipVerify: c.InsecureSkipVerify,
		MaxBodyBytes:       c.MaxBodyBytes,
		UserAgent:          c.UserAgent,
	}
}
