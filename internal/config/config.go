// Package config loads the prepai configuration: a .env file, then an
// optional TOML file, then PREPAI_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/abhisek/prepai/internal/interviewprep"
	"github.com/abhisek/prepai/internal/llm"
)

// Duration is a time.Duration spelled as a Go duration string in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", b, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type ServerConfig struct {
	Addr string `toml:"addr"`

	// Mode is the gin mode: "release", "debug" or "test".
	Mode string `toml:"mode"`

	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	// Path is the SQLite file. Empty means store.DefaultDBPath.
	Path string `toml:"path"`
}

type TimeoutConfig struct {
	LLM              Duration `toml:"llm"`
	RetryInitialWait Duration `toml:"retry_initial_wait"`
	RetryMaxWait     Duration `toml:"retry_max_wait"`
}

type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `toml:"level"`

	// Format is "json" or "console".
	Format string `toml:"format"`
}

type Config struct {
	Server     ServerConfig          `toml:"server"`
	Database   DatabaseConfig        `toml:"database"`
	LLM        llm.Config            `toml:"llm"`
	Timeouts   TimeoutConfig         `toml:"timeouts"`
	Generation interviewprep.Config  `toml:"generation"`
	Prompts    interviewprep.Prompts `toml:"prompts"`
	Log        LogConfig             `toml:"log"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	lc := llm.DefaultConfig()
	return &Config{
		Server: ServerConfig{
			Addr:            ":8000",
			Mode:            "release",
			ShutdownTimeout: Duration{10 * time.Second},
		},
		LLM: lc,
		Timeouts: TimeoutConfig{
			LLM:              Duration{lc.Timeout},
			RetryInitialWait: Duration{lc.Retry.InitialWait},
			RetryMaxWait:     Duration{lc.Retry.MaxWait},
		},
		Generation: interviewprep.DefaultConfig(),
		Log:        LogConfig{Level: "info", Format: "json"},
	}
}

// Load builds the configuration. Sources, lowest priority first: built-in
// defaults, the TOML file at path (skipped when path is empty), then
// environment variables, including any loaded from ./.env.
func Load(path string) (*Config, error) {
	if err := LoadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv("PREPAI_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.resolve()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads variables from the given files without overriding ones
// already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.LLM.ApplyEnv()

	if v := os.Getenv("PREPAI_LLM_TIMEOUT"); v != "" {
		if err := c.Timeouts.LLM.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("PREPAI_LLM_TIMEOUT: %w", err)
		}
	}
	if v := os.Getenv("PREPAI_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("PORT"); v != "" && os.Getenv("PREPAI_ADDR") == "" {
		c.Server.Addr = ":" + v
	}
	if v := os.Getenv("PREPAI_DB"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("PREPAI_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("PREPAI_STRUCTURED_OUTPUT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PREPAI_STRUCTURED_OUTPUT: %w", err)
		}
		c.Generation.StructuredOutput = b
	}
	return nil
}

// resolve copies values that live in more than one section into place.
func (c *Config) resolve() {
	c.LLM.Timeout = c.Timeouts.LLM.Duration
	c.LLM.Retry.InitialWait = c.Timeouts.RetryInitialWait.Duration
	c.LLM.Retry.MaxWait = c.Timeouts.RetryMaxWait.Duration
	c.Generation.Prompts = c.Prompts
}

// Validate checks values that would otherwise fail later and less clearly.
// Provider credentials are checked when the provider is built, so commands
// that never call a model work without keys.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}
	switch c.Server.Mode {
	case "release", "debug", "test":
	default:
		return fmt.Errorf("server.mode %q: want release, debug or test", c.Server.Mode)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format %q: want json or console", c.Log.Format)
	}
	if c.Generation.MaxQuestions < 1 {
		return errors.New("generation.max_questions must be at least 1")
	}
	if c.Generation.MaxTokens < 1 {
		return errors.New("generation.max_tokens must be at least 1")
	}
	if c.Generation.Temperature < 0 || c.Generation.Temperature > 1 {
		return fmt.Errorf("generation.temperature %.2f: want 0.0-1.0", c.Generation.Temperature)
	}
	return nil
}
