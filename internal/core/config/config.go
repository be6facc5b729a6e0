package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Backend holds the marketplace REST API configuration.
	Backend BackendConfig `mapstructure:",squash"`

	// Cache holds the Redis cache configuration.
	Cache CacheConfig `mapstructure:",squash"`
}

// BackendConfig holds the connection details of the marketplace API that owns deliveries.
type BackendConfig struct {
	// URL is the base URL of the marketplace API.
	URL string `mapstructure:"BACKEND_URL" required:"true"`
	// Token is the bearer token sent on every request. Empty disables the header.
	Token string `mapstructure:"BACKEND_TOKEN"`
	// TimeoutSeconds bounds each backend request.
	TimeoutSeconds int `mapstructure:"BACKEND_TIMEOUT_SECONDS" default:"10"`
}

// Timeout returns the request timeout as a duration.
func (b BackendConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutSeconds) * time.Second
}

// CacheConfig holds the Redis cache settings.
type CacheConfig struct {
	// RedisURL is redis://[:password@]host[:port][/database]. Empty disables caching.
	RedisURL string `mapstructure:"REDIS_URL"`
	// Prefix namespaces every key written by this service.
	Prefix string `mapstructure:"CACHE_PREFIX" default:"logistics-tracker"`
	// TTLSeconds is how long backend responses stay cached.
	TTLSeconds int `mapstructure:"CACHE_TTL_SECONDS" default:"30"`
}

// Enabled reports whether a Redis URL was configured.
func (c CacheConfig) Enabled() bool {
	return c.RedisURL != ""
}

// TTL returns the cache TTL as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if config.Backend.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid configuration: BACKEND_TIMEOUT_SECONDS must be positive, got %d", config.Backend.TimeoutSeconds)
	}
	if config.Cache.TTLSeconds < 0 {
		return nil, fmt.Errorf("invalid configuration: CACHE_TTL_SECONDS must not be negative, got %d", config.Cache.TTLSeconds)
	}

	return &config, nil
}

// processTags binds every tagged field to its env key and registers defaults in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}
