// Package config holds the server configuration, loaded from an optional
// YAML file and overridden by POLYTASK_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port string `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	Translator struct {
		// BaseURL of a LibreTranslate-compatible service; empty means
		// passthrough mode (content stays untranslated).
		BaseURL string        `yaml:"baseURL"`
		APIKey  string        `yaml:"apiKey"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"translator"`

	Localizer struct {
		// Concurrency bounds the fan-out worker pool.
		Concurrency int `yaml:"concurrency"`
	} `yaml:"localizer"`

	Stream struct {
		// DedupSize caps the reconciler's processed-id set.
		DedupSize int `yaml:"dedupSize"`
	} `yaml:"stream"`
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "8282"
	cfg.Database.Path = "data/polytask.db"
	cfg.Translator.Timeout = 10 * time.Second
	cfg.Localizer.Concurrency = 4
	cfg.Stream.DedupSize = 4096
	return cfg
}

// Load builds the configuration: defaults, then the YAML file at path (if it
// exists), then environment variables.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if err := cfg.readYAML(path); err != nil {
		return nil, err
	}
	cfg.readEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) readYAML(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Info().Str("path", path).Msg("No YAML configuration file found, skipping")
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}
	log.Info().Str("path", path).Msg("Successfully loaded configuration")
	return nil
}

func (cfg *Config) readEnv() {
	setStr := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setStr("POLYTASK_HOST", &cfg.Server.Host)
	setStr("POLYTASK_PORT", &cfg.Server.Port)
	setStr("POLYTASK_DB_PATH", &cfg.Database.Path)
	setStr("POLYTASK_TRANSLATOR_URL", &cfg.Translator.BaseURL)
	setStr("POLYTASK_TRANSLATOR_API_KEY", &cfg.Translator.APIKey)
	if v := os.Getenv("POLYTASK_TRANSLATOR_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Translator.Timeout = d
		} else {
			log.Warn().Str("value", v).Msg("invalid POLYTASK_TRANSLATOR_TIMEOUT, keeping previous value")
		}
	}
	if v := os.Getenv("POLYTASK_FANOUT_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Localizer.Concurrency = n
		}
	}
	if v := os.Getenv("POLYTASK_STREAM_DEDUP_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Stream.DedupSize = n
		}
	}
}

func (cfg *Config) validate() error {
	if cfg.Server.Port == "" {
		return fmt.Errorf("server port must not be empty")
	}
	if cfg.Database.Path == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if cfg.Localizer.Concurrency < 0 {
		return fmt.Errorf("fan-out concurrency must not be negative")
	}
	return nil
}
