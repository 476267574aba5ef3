package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "turing.yaml"

// Output formats accepted by the parse command.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the settings shared by every command.
type Config struct {
	Alphabet string `yaml:"alphabet" mapstructure:"alphabet" env:"TURING_ALPHABET"`
	LogLevel string `yaml:"log_level" mapstructure:"log_level" env:"TURING_LOG_LEVEL"`
	Debug    bool   `yaml:"debug" mapstructure:"debug" env:"TURING_DEBUG"`
	Output   string `yaml:"output" mapstructure:"output" env:"TURING_OUTPUT"`
	Banner   bool   `yaml:"banner" mapstructure:"banner" env:"TURING_BANNER"`
	Name     string `yaml:"name" mapstructure:"name" env:"TURING_NAME"`
}

// Default returns the built-in settings: the binary alphabet "01" and info logging.
func Default() Config {
	return Config{
		Alphabet: "01",
		LogLevel: "info",
		Output:   OutputText,
		Banner:   true,
	}
}

// Load builds a Config from defaults, the YAML file at path, a .env file in the
// working directory and TURING_* environment variables, in that order.
// An empty path means DefaultPath, which may be missing.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	// A missing default file is fine; a missing explicit one is not.
	if err := loadFile(path, &cfg); err != nil && (explicit || !errors.Is(err, os.ErrNotExist)) {
		return Config{}, err
	}

	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load()

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

// loadFile decodes the YAML document at path on top of cfg.
// Keys that are absent keep their current value.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if raw == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	return nil
}

// Validate checks that the settings can be used to start an editor.
func (c Config) Validate() error {
	if _, err := domain.NewAlphabet(c.Alphabet); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	return nil
}
