package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "PARKING_ATLAS"

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Pricing PricingConfig `mapstructure:"pricing"`
	Dataset DatasetConfig `mapstructure:"dataset"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// PricingConfig sets the process-wide parking rate. When ProfilesPath is set
// the named Profile is read from that file and takes precedence.
type PricingConfig struct {
	RatePerMinute float64 `mapstructure:"rate_per_minute"`
	Currency      string  `mapstructure:"currency"`
	Locale        string  `mapstructure:"locale"`
	ProfilesPath  string  `mapstructure:"profiles_path"`
	Profile       string  `mapstructure:"profile"`
}

// DatasetConfig points at a YAML dataset; empty means the embedded sample.
type DatasetConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load reads configuration from path (or ./parking-atlas.yaml when path is
// empty) and PARKING_ATLAS_* environment variables on top of the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("pricing.rate_per_minute", 65)
	v.SetDefault("pricing.currency", "USD")
	v.SetDefault("pricing.locale", "en-US")
	v.SetDefault("pricing.profiles_path", "")
	v.SetDefault("pricing.profile", "default")
	v.SetDefault("dataset.path", "")
	v.SetDefault("log.level", "info")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("parking-atlas")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Pricing.RatePerMinute <= 0 {
		return fmt.Errorf("pricing.rate_per_minute must be greater than 0, got %v", cfg.Pricing.RatePerMinute)
	}

	if cfg.Pricing.Currency == "" {
		return errors.New("pricing.currency is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Log.Level)
	}

	return nil
}
