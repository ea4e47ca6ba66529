package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"meteorenard.app/pkg/errors"
	"meteorenard.app/pkg/validation"
)

const (
	maxRedisDB              = 15
	maxPortNumber           = 65535
	maxRefreshMinutes       = 1440
	maxHTTPTimeoutSeconds   = 120
	maxGeolocationSeconds   = 120
	minReverseIntervalMilli = 1000
)

// Config represents the application configuration structure
type Config struct {
	Server    ServerConfig    `split_words:"true"`
	Log       LogConfig       `split_words:"true"`
	Weather   WeatherConfig   `split_words:"true"`
	Geocoding GeocodingConfig `split_words:"true"`
	Location  LocationConfig  `split_words:"true"`
	Store     StoreConfig     `split_words:"true"`
	Scheduler SchedulerConfig `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type LogConfig struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
	FilePath string `envconfig:"LOG_FILE_PATH"`
}

type WeatherConfig struct {
	Provider           string `envconfig:"WEATHER_PROVIDER" default:"open-meteo"`
	OpenMeteoBaseURL   string `envconfig:"OPEN_METEO_BASE_URL" default:"https://api.open-meteo.com/v1"`
	MSCGeoMetBaseURL   string `envconfig:"MSC_GEOMET_BASE_URL" default:"https://api.weather.gc.ca"`
	HTTPTimeoutSeconds int    `envconfig:"HTTP_TIMEOUT_SECONDS" default:"10"`
	EnableLogging      bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
}

type GeocodingConfig struct {
	SearchBaseURL     string `envconfig:"GEOCODING_BASE_URL" default:"https://geocoding-api.open-meteo.com/v1"`
	ReverseBaseURL    string `envconfig:"NOMINATIM_BASE_URL" default:"https://nominatim.openstreetmap.org"`
	UserAgent         string `envconfig:"NOMINATIM_USER_AGENT" default:"MeteoRenard/1.0"`
	MinIntervalMillis int    `envconfig:"REVERSE_GEOCODING_MIN_INTERVAL_MS" default:"1000"`
}

type LocationConfig struct {
	DefaultName               string  `envconfig:"DEFAULT_LOCATION_NAME" default:"Montréal"`
	DefaultLatitude           float64 `envconfig:"DEFAULT_LOCATION_LATITUDE" default:"45.5017"`
	DefaultLongitude          float64 `envconfig:"DEFAULT_LOCATION_LONGITUDE" default:"-73.5673"`
	GeolocationTimeoutSeconds int     `envconfig:"GEOLOCATION_TIMEOUT_SECONDS" default:"10"`
}

// StoreType represents the key-value backend holding preferences
type StoreType string

const (
	StoreTypeMemory   StoreType = "memory"
	StoreTypeRedis    StoreType = "redis"
	StoreTypeDatabase StoreType = "database"
)

// IsValid checks if the store type is valid
func (s StoreType) IsValid() bool {
	return s == StoreTypeMemory || s == StoreTypeRedis || s == StoreTypeDatabase
}

type StoreConfig struct {
	Type     StoreType      `envconfig:"STORE_TYPE" default:"memory"`
	Redis    RedisConfig    `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix    string `envconfig:"REDIS_KEY_PREFIX" default:"meteorenard:"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type DatabaseConfig struct {
	Driver   string `envconfig:"DB_DRIVER" default:"sqlite"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"meteorenard"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	Path     string `envconfig:"DB_PATH" default:"meteorenard.db"`
}

type SchedulerConfig struct {
	Enabled                bool `envconfig:"REFRESH_ENABLED" default:"true"`
	RefreshIntervalMinutes int  `envconfig:"REFRESH_INTERVAL_MINUTES" default:"10"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	validators := []func() error{
		c.Server.Validate,
		c.Log.Validate,
		c.Weather.Validate,
		c.Geocoding.Validate,
		c.Location.Validate,
		c.Store.Validate,
		c.Scheduler.Validate,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func validateURL(name, value string) error {
	if value == "" {
		return errors.NewConfigurationError(fmt.Sprintf("%s cannot be empty", name), nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(fmt.Sprintf("%s must start with http:// or https://", name), nil)
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "error":
		return nil
	}
	return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
}

// KnownProviders lists the accepted WEATHER_PROVIDER values
var KnownProviders = []string{"open-meteo", "msc-geomet"}

func (w *WeatherConfig) Validate() error {
	known := false
	for _, id := range KnownProviders {
		if w.Provider == id {
			known = true
			break
		}
	}
	if !known {
		return errors.NewConfigurationError(
			fmt.Sprintf("WEATHER_PROVIDER must be one of: %s", strings.Join(KnownProviders, ", ")), nil)
	}
	if err := validateURL("OPEN_METEO_BASE_URL", w.OpenMeteoBaseURL); err != nil {
		return err
	}
	if err := validateURL("MSC_GEOMET_BASE_URL", w.MSCGeoMetBaseURL); err != nil {
		return err
	}
	if w.HTTPTimeoutSeconds < 1 || w.HTTPTimeoutSeconds > maxHTTPTimeoutSeconds {
		return errors.NewConfigurationError("HTTP_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	return nil
}

func (g *GeocodingConfig) Validate() error {
	if err := validateURL("GEOCODING_BASE_URL", g.SearchBaseURL); err != nil {
		return err
	}
	if err := validateURL("NOMINATIM_BASE_URL", g.ReverseBaseURL); err != nil {
		return err
	}
	if strings.TrimSpace(g.UserAgent) == "" {
		return errors.NewConfigurationError("NOMINATIM_USER_AGENT cannot be empty", nil)
	}
	if g.MinIntervalMillis < minReverseIntervalMilli {
		return errors.NewConfigurationError("REVERSE_GEOCODING_MIN_INTERVAL_MS must be at least 1000", nil)
	}
	return nil
}

func (l *LocationConfig) Validate() error {
	if !validation.IsNotEmpty(l.DefaultName) {
		return errors.NewConfigurationError("DEFAULT_LOCATION_NAME cannot be empty", nil)
	}
	if !validation.IsValidLatitude(l.DefaultLatitude) {
		return errors.NewConfigurationError("DEFAULT_LOCATION_LATITUDE must be between -90 and 90", nil)
	}
	if !validation.IsValidLongitude(l.DefaultLongitude) {
		return errors.NewConfigurationError("DEFAULT_LOCATION_LONGITUDE must be between -180 and 180", nil)
	}
	if l.GeolocationTimeoutSeconds < 1 || l.GeolocationTimeoutSeconds > maxGeolocationSeconds {
		return errors.NewConfigurationError("GEOLOCATION_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	return nil
}

func (s *StoreConfig) Validate() error {
	if !s.Type.IsValid() {
		return errors.NewConfigurationError("STORE_TYPE must be one of: memory, redis, database", nil)
	}

	switch s.Type {
	case StoreTypeRedis:
		return s.Redis.Validate()
	case StoreTypeDatabase:
		return s.Database.Validate()
	}
	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using the Redis store", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case "sqlite":
		if d.Path == "" {
			return errors.NewConfigurationError("DB_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	case "postgres":
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: postgres, sqlite", nil)
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (s *SchedulerConfig) Validate() error {
	if !s.Enabled {
		return nil
	}
	if s.RefreshIntervalMinutes < 1 {
		return errors.NewConfigurationError("REFRESH_INTERVAL_MINUTES must be at least 1 minute", nil)
	}
	if s.RefreshIntervalMinutes > maxRefreshMinutes {
		return errors.NewConfigurationError("REFRESH_INTERVAL_MINUTES cannot exceed 1440 minutes (24 hours)", nil)
	}
	return nil
}
