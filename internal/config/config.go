// Package config loads the countryd service configuration from the
// environment, an optional .env file and an optional YAML locale rules file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/country/pkg/logger"
)

// Config is the full service configuration.
type Config struct {
	Logger  logger.Config
	HTTP    HTTPConfig
	Country CountryConfig
}

// HTTPConfig configures the HTTP listener.
type HTTPConfig struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ReadyTimeout    time.Duration `env:"HTTP_READY_TIMEOUT" envDefault:"2s"`
}

// CountryConfig configures the country repository.
type CountryConfig struct {
	DefaultLocale string `env:"COUNTRY_DEFAULT_LOCALE"`
	DatasetDir    string `env:"COUNTRY_DATASET_DIR"`
	RulesFile     string `env:"COUNTRY_LOCALE_RULES"`

	// Rules is filled from RulesFile by Load.
	Rules Rules `env:"-"`
}

// Rules holds locale rules read from YAML:
//
//	default_locale: de
//	fallbacks:
//	  fr-CH: fr
//	mapping:
//	  de-AT: de
type Rules struct {
	DefaultLocale string            `yaml:"default_locale"`
	Fallbacks     map[string]string `yaml:"fallbacks"`
	Mapping       map[string]string `yaml:"mapping"`
}

// Load reads dotenv files (missing files are ignored), parses the environment
// and loads the locale rules file when one is configured. Variables already
// set in the environment win over dotenv values.
func Load(dotenv ...string) (*Config, error) {
	for _, file := range dotenv {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	if cfg.Country.RulesFile != "" {
		file := cfg.Country.RulesFile
		rules, err := LoadRules(os.DirFS(filepath.Dir(file)), filepath.Base(file))
		if err != nil {
			return nil, err
		}
		cfg.Country.Rules = rules
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadRules parses a YAML rules file from fsys.
func LoadRules(fsys fs.FS, name string) (Rules, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Rules{}, fmt.Errorf("%w: %w", ErrInvalidRules, err)
	}

	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("%w: %s: %w", ErrInvalidRules, name, err)
	}

	for from, to := range rules.Fallbacks {
		if from == "" || to == "" {
			return Rules{}, fmt.Errorf("%w: empty fallback entry %q: %q", ErrInvalidRules, from, to)
		}
	}
	for from, to := range rules.Mapping {
		if from == "" || to == "" {
			return Rules{}, fmt.Errorf("%w: empty mapping entry %q: %q", ErrInvalidRules, from, to)
		}
	}
	return rules, nil
}

// EffectiveDefaultLocale returns the configured default locale, or "" when
// none is set. The environment variable takes precedence over the rules file.
func (c CountryConfig) EffectiveDefaultLocale() string {
	if c.DefaultLocale != "" {
		return c.DefaultLocale
	}
	return c.Rules.DefaultLocale
}

func (c *Config) validate() error {
	if c.HTTP.Addr == "" {
		return fmt.Errorf("%w: HTTP_ADDR is empty", ErrInvalidConfig)
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: HTTP_SHUTDOWN_TIMEOUT must be positive", ErrInvalidConfig)
	}
	if c.HTTP.ReadyTimeout <= 0 {
		return fmt.Errorf("%w: HTTP_READY_TIMEOUT must be positive", ErrInvalidConfig)
	}
	return nil
}
