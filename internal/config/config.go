// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type WordSourceConfig struct {
	URL    string `yaml:"url"`
	Format string `yaml:"format"`
	APIKey string `yaml:"apiKey"`
	// MinPoolWords is the pool size the app keeps fetching toward before
	// generating; MaxFetches bounds that loop.
	MinPoolWords int `yaml:"minPoolWords"`
	MaxFetches   int `yaml:"maxFetches"`
}

type RateLimitConfig struct {
	RequestsPerSecond int `yaml:"requestsPerSecond"`
	Burst             int `yaml:"burst"`
}

type HTTPClientConfig struct {
	Timeout    int    `yaml:"timeout"`
	MaxRetries int    `yaml:"maxRetries"`
	RetryDelay int    `yaml:"retryDelay"`
	UserAgent  string `yaml:"userAgent"`
}

type GeneratorConfig struct {
	Separator     string `yaml:"separator"`
	Capitalize    bool   `yaml:"capitalize"`
	DigitSuffix   int    `yaml:"digitSuffix"`
	MinWordLength int    `yaml:"minWordLength"`
}

type OutputConfig struct {
	Format      string `yaml:"format"`
	PrettyPrint bool   `yaml:"prettyPrint"`
}

type ServerConfig struct {
	Port              string  `yaml:"port"`
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
	Burst             int     `yaml:"burst"`
}

type Config struct {
	WordSource WordSourceConfig `yaml:"wordSource"`
	RateLimit  RateLimitConfig  `yaml:"rateLimit"`
	HTTPClient HTTPClientConfig `yaml:"httpClient"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Output     OutputConfig     `yaml:"output"`
	Server     ServerConfig     `yaml:"server"`
}

// Load reads and parses the configuration from config.yaml.
func Load() (*Config, error) {
	return LoadFrom("config.yaml")
}

// LoadFrom reads and parses the configuration from the given path.
func LoadFrom(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	setDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults(cfg *Config) {
	if cfg.WordSource.Format == "" {
		cfg.WordSource.Format = "json"
	}
	if cfg.WordSource.MinPoolWords == 0 {
		cfg.WordSource.MinPoolWords = 50
	}
	if cfg.WordSource.MaxFetches == 0 {
		cfg.WordSource.MaxFetches = 10
	}
	if cfg.RateLimit.RequestsPerSecond == 0 {
		cfg.RateLimit.RequestsPerSecond = 5
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 10
	}
	if cfg.HTTPClient.Timeout == 0 {
		cfg.HTTPClient.Timeout = 30
	}
	if cfg.HTTPClient.MaxRetries == 0 {
		cfg.HTTPClient.MaxRetries = 3
	}
	if cfg.HTTPClient.UserAgent == "" {
		cfg.HTTPClient.UserAgent = "passphrase-service/1.0"
	}
	if cfg.Generator.Separator == "" {
		cfg.Generator.Separator = "-"
	}
	if cfg.Generator.MinWordLength == 0 {
		cfg.Generator.MinWordLength = 3
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Server.RequestsPerSecond == 0 {
		cfg.Server.RequestsPerSecond = 5
	}
	if cfg.Server.Burst == 0 {
		cfg.Server.Burst = 10
	}
}

// applyEnvOverrides lets deployment environments override the file without
// editing it.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("WORD_SOURCE_URL"); v != "" {
		cfg.WordSource.URL = v
	}
	if v := os.Getenv("WORD_SOURCE_API_KEY"); v != "" {
		cfg.WordSource.APIKey = v
	}
	if v := os.Getenv("WORD_SOURCE_MIN_POOL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WordSource.MinPoolWords = n
		}
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.WordSource.URL == "" {
		return fmt.Errorf("wordSource.url is required")
	}
	switch c.WordSource.Format {
	case "json", "text", "html":
	default:
		return fmt.Errorf("wordSource.format must be one of json, text, html; got %q", c.WordSource.Format)
	}
	if c.WordSource.MinPoolWords <= 0 {
		return fmt.Errorf("wordSource.minPoolWords must be positive")
	}
	if c.WordSource.MaxFetches <= 0 {
		return fmt.Errorf("wordSource.maxFetches must be positive")
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("rateLimit.requestsPerSecond must be positive")
	}
	if c.HTTPClient.Timeout <= 0 {
		return fmt.Errorf("httpClient.timeout must be positive")
	}
	if c.Generator.DigitSuffix < 0 {
		return fmt.Errorf("generator.digitSuffix must not be negative")
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be text or json; got %q", c.Output.Format)
	}
	return nil
}
