package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/lovelace/foundation/core/error"
	mdwlog "github.com/msto63/lovelace/foundation/core/log"
)

// EnvVar names the environment variable that points at a config file
const EnvVar = "LOVELACE_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General     GeneralConfig     `toml:"general" yaml:"general"`
	Log         LogConfig         `toml:"log" yaml:"log"`
	Interpreter InterpreterConfig `toml:"interpreter" yaml:"interpreter"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// InterpreterConfig holds settings for running scripts
type InterpreterConfig struct {
	Prompt         string   `toml:"prompt" yaml:"prompt"`
	MaxSourceBytes int      `toml:"max_source_bytes" yaml:"max_source_bytes"`
	MaxTokens      int      `toml:"max_tokens" yaml:"max_tokens"`
	Timeout        Duration `toml:"timeout" yaml:"timeout"`
	DumpTokens     bool     `toml:"dump_tokens" yaml:"dump_tokens"`
	DumpAST        bool     `toml:"dump_ast" yaml:"dump_ast"`
	NoColor        bool     `toml:"no_color" yaml:"no_color"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, configError(err, "config file not found", path)
		}
		return nil, configError(err, "failed to read config", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, configError(err, "failed to parse config", path)
		}
	default:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, configError(err, "failed to parse config", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, mdwerror.Newf("unknown config key %q", undecoded[0].String()).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
	}

	// Apply defaults
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Resolve returns the config file to use: LOVELACE_CONFIG if set,
// otherwise the first default location that exists, otherwise ""
func Resolve() string {
	if path := os.Getenv(EnvVar); path != "" {
		return path
	}

	defaultPaths := []string{
		"./lovelace.toml",
		"./lovelace.yaml",
		"./configs/lovelace.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		defaultPaths = append(defaultPaths, filepath.Join(home, ".config/lovelace/config.toml"))
	}

	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// LoadFromEnv loads configuration from the LOVELACE_CONFIG environment
// variable or a default location
func LoadFromEnv() (*Config, error) {
	path := Resolve()
	if path == "" {
		return nil, mdwerror.New("no config file found, set " + EnvVar + " or create lovelace.toml").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.LoadFromEnv")
	}

	return Load(path)
}

// LoadOrDefault loads path when given, otherwise the resolved config file,
// and falls back to Default when no file exists
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = Resolve()
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "lovelace"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = "error"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// Interpreter
	if c.Interpreter.Prompt == "" {
		c.Interpreter.Prompt = "Input: "
	}
	if c.Interpreter.MaxSourceBytes == 0 {
		c.Interpreter.MaxSourceBytes = 1 << 20
	}
}

// Validate checks values that defaults cannot repair
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", c.Log.Level, err)
	}
	if _, err := mdwlog.ParseFormat(c.Log.Format); err != nil {
		return invalid("log.format", c.Log.Format, err)
	}
	if c.Interpreter.MaxSourceBytes < 0 {
		return invalid("interpreter.max_source_bytes", c.Interpreter.MaxSourceBytes, nil)
	}
	if c.Interpreter.MaxTokens < 0 {
		return invalid("interpreter.max_tokens", c.Interpreter.MaxTokens, nil)
	}
	if c.Interpreter.Timeout.Duration < 0 {
		return invalid("interpreter.timeout", c.Interpreter.Timeout.Duration, nil)
	}
	return nil
}

func configError(err error, message, path string) error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeConfigError).
		WithOperation("config.Load").
		WithDetail("path", path)
}

func invalid(key string, value interface{}, cause error) error {
	var err *mdwerror.Error
	if cause != nil {
		err = mdwerror.Wrap(cause, "invalid value for "+key)
	} else {
		err = mdwerror.Newf("invalid value for %s: %v", key, value)
	}
	return err.
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key)
}
