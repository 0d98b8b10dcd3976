package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // timezone names must resolve on hosts without zoneinfo

	"github.com/etnz/tradebook"
	"github.com/etnz/tradebook/agent"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the content of the configuration file.
type Config struct {
	Currency  string `yaml:"currency" validate:"required,iso4217"`
	Timezone  string `yaml:"timezone" validate:"omitempty,timezone"`
	WeekStart string `yaml:"weekStart" validate:"required,oneof=monday sunday"`
	Journal   string `yaml:"journal" validate:"required"`
	Model     string `yaml:"model" validate:"required"`
}

// DefaultConfig is the configuration used when there is no configuration file.
func DefaultConfig() Config {
	return Config{
		Currency:  tradebook.DefaultCurrency,
		WeekStart: "monday",
		Journal:   ".",
		Model:     agent.DefaultModel,
	}
}

// Validate checks the values of the configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoadConfig reads the configuration file at path. Keys missing from the file
// keep their default value, and a missing file is the default configuration.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("could not read configuration %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("could not parse configuration %q: %w", path, err)
	}
	config.Currency = strings.ToUpper(strings.TrimSpace(config.Currency))
	config.WeekStart = strings.ToLower(strings.TrimSpace(config.WeekStart))
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Options returns the analysis options of the configuration.
func (c Config) Options() (tradebook.Options, error) {
	opts := tradebook.DefaultOptions()
	opts.Currency = c.Currency
	if c.Timezone != "" {
		loc, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return opts, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
		}
		opts.Location = loc
	}
	if c.WeekStart == "sunday" {
		opts.WeekStart = time.Sunday
	}
	return opts, nil
}

// LoadEnv loads the .env file of dir into the environment, if there is one.
// Variables already set are kept.
func LoadEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load %q: %w", path, err)
	}
	return nil
}
