package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/shabbyrobe/gibberish"
)

// Config holds everything the gibberish command and service read at startup.
type Config struct {
	// Classification
	Strategy    string         `yaml:"strategy"` // tiered, weighted
	Sensitivity string         `yaml:"sensitivity"`
	Weighted    WeightedConfig `yaml:"weighted"`

	// Word lists and pattern tables. Empty paths mean the embedded defaults.
	Words     WordListConfig `yaml:"words"`
	Passwords WordListConfig `yaml:"passwords"`
	Tables    TablesConfig   `yaml:"tables"`

	Server  ServerConfig  `yaml:"server"`
	Batch   BatchConfig   `yaml:"batch"`
	Logging LoggingConfig `yaml:"logging"`
}

// WeightedConfig holds the weighted strategy thresholds, each in (0, 1].
// Validate rejects 0, which the library would read as its default.
type WeightedConfig struct {
	MinCombined  float64 `yaml:"min_combined"`
	MinWordScore float64 `yaml:"min_word_score"`
}

// WordListConfig points at a one-word-per-line file. When Replace is false the
// file extends the embedded list.
type WordListConfig struct {
	Path    string `yaml:"path"`
	Replace bool   `yaml:"replace"`
}

// TablesConfig points at files written by "gibberish tables build".
type TablesConfig struct {
	Bigrams   string `yaml:"bigrams"`
	Trigrams  string `yaml:"trigrams"`
	Quadgrams string `yaml:"quadgrams"`
}

type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ReadTimeout     string `yaml:"read_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64  `yaml:"max_body_bytes"`
}

type BatchConfig struct {
	Workers int `yaml:"workers"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

func DefaultConfig() *Config {
	return &Config{
		Strategy:    "tiered",
		Sensitivity: "medium",
		Weighted: WeightedConfig{
			MinCombined:  gibberish.DefaultMinCombined,
			MinWordScore: gibberish.DefaultMinWordScore,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     "10s",
			ShutdownTimeout: "15s",
			MaxBodyBytes:    1 << 20,
		},
		Batch: BatchConfig{
			Workers: 4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML config file on top of the defaults. A missing file is not
// an error. Environment overrides are applied either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("GIBBERISH_STRATEGY"); v != "" {
		c.Strategy = v
	}
	if v := os.Getenv("GIBBERISH_SENSITIVITY"); v != "" {
		c.Sensitivity = v
	}
	if v := os.Getenv("GIBBERISH_WORDS"); v != "" {
		c.Words.Path = v
	}
	if v := os.Getenv("GIBBERISH_PASSWORDS"); v != "" {
		c.Passwords.Path = v
	}
	if v := os.Getenv("GIBBERISH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("GIBBERISH_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("GIBBERISH_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: GIBBERISH_WORKERS: %w", err)
		}
		c.Batch.Workers = n
	}
	return nil
}

var ValidStrategies = []string{"tiered", "weighted"}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Strategy) {
	case "tiered", "weighted":
	default:
		return fmt.Errorf("config: invalid strategy %q (valid: %v)", c.Strategy, ValidStrategies)
	}
	if _, err := gibberish.ParseSensitivity(c.Sensitivity); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Weighted.MinCombined <= 0 || c.Weighted.MinCombined > 1 {
		return fmt.Errorf("config: weighted.min_combined %v out of range (0, 1]", c.Weighted.MinCombined)
	}
	if c.Weighted.MinWordScore <= 0 || c.Weighted.MinWordScore > 1 {
		return fmt.Errorf("config: weighted.min_word_score %v out of range (0, 1]", c.Weighted.MinWordScore)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("config: batch.workers must be at least 1, got %d", c.Batch.Workers)
	}
	for name, v := range map[string]string{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
	} {
		if v == "" {
			continue
		}
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("config: %s: %w", name, err)
		}
	}
	if c.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("config: server.max_body_bytes must not be negative")
	}
	return nil
}

func (c *Config) GetReadTimeout() time.Duration {
	return parseDuration(c.Server.ReadTimeout, 10*time.Second)
}

func (c *Config) GetShutdownTimeout() time.Duration {
	return parseDuration(c.Server.ShutdownTimeout, 15*time.Second)
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// ClassifyStrategy builds the configured classification strategy.
func (c *Config) ClassifyStrategy() (gibberish.Strategy, error) {
	return StrategyFor(c.Strategy, c.Sensitivity, c.Weighted)
}

// StrategyFor resolves a strategy by name, as accepted on the command line
// and by the HTTP API. An empty name means tiered.
func StrategyFor(name, sensitivity string, w WeightedConfig) (gibberish.Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "tiered":
		s, err := gibberish.ParseSensitivity(sensitivity)
		if err != nil {
			return nil, err
		}
		return gibberish.Tiered{Sensitivity: s}, nil
	case "weighted":
		return gibberish.Weighted{MinCombined: w.MinCombined, MinWordScore: w.MinWordScore}, nil
	}
	return nil, fmt.Errorf("config: unknown strategy %q", name)
}
