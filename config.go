package lingo

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const defaultCacheTTL = 5 * time.Minute

// Config carries the knobs needed to set up a localization service. Values
// come from the environment by default; a yaml file can pre-fill them.
type Config struct {
	ServiceName string `envDefault:"lingo" env:"SERVICE_NAME" yaml:"service_name"`

	LogLevel   string `envDefault:"info" env:"LOG_LEVEL"   yaml:"log_level"`
	LogColored bool   `envDefault:"true" env:"LOG_COLORED" yaml:"log_colored"`

	DefaultLanguage string `envDefault:"en"           env:"LINGO_DEFAULT_LANGUAGE" yaml:"default_language"`
	LanguagesPath   string `envDefault:""             env:"LINGO_LANGUAGES_PATH"   yaml:"languages_path"`
	MessagesDir     string `envDefault:"localization" env:"LINGO_MESSAGES_DIR"     yaml:"messages_dir"`

	DatabaseURL string `env:"DATABASE_URL" yaml:"database_url"`

	CacheURL string `env:"CACHE_URL"                 yaml:"cache_url"`
	CacheTTL string `envDefault:"5m" env:"CACHE_TTL" yaml:"cache_ttl"`
}

// ConfigFromEnv processes a configuration object from environment data.
func ConfigFromEnv() (Config, error) {
	return env.ParseAs[Config]()
}

// ConfigFromFile reads a yaml configuration file. Fields absent from the
// file keep their zero values; the file is authoritative over the
// environment when both are used.
func ConfigFromFile(path string) (Config, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

type ConfigurationLogging interface {
	LoggingLevel() string
	LoggingColored() bool
}

var _ ConfigurationLogging = new(Config)

func (c *Config) LoggingLevel() string {
	return c.LogLevel
}

func (c *Config) LoggingColored() bool {
	return c.LogColored
}

type ConfigurationCache interface {
	GetCacheURL() string
	GetCacheTTL() time.Duration
}

var _ ConfigurationCache = new(Config)

func (c *Config) GetCacheURL() string {
	return c.CacheURL
}

func (c *Config) GetCacheTTL() time.Duration {
	if c.CacheTTL != "" {
		ttl, err := time.ParseDuration(c.CacheTTL)
		if err == nil {
			return ttl
		}
	}

	return defaultCacheTTL
}
