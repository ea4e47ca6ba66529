package ports

import (
	"context"
	"time"

	"meteorenard.app/internal/core/location"
)

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// WeatherConfig represents weather provider configuration
type WeatherConfig struct {
	Provider         string
	OpenMeteoBaseURL string
	MSCGeoMetBaseURL string
	HTTPTimeout      time.Duration
	EnableLogging    bool
}

// GeocodingConfig represents city search and reverse geocoding configuration
type GeocodingConfig struct {
	SearchBaseURL  string
	ReverseBaseURL string
	UserAgent      string
	MinInterval    time.Duration
	HTTPTimeout    time.Duration
}

// LocationConfig represents location defaults
type LocationConfig struct {
	Default            location.Location
	GeolocationTimeout time.Duration
}

// StoreConfig represents key-value store configuration
type StoreConfig struct {
	Type     string
	Redis    RedisConfig
	Database DatabaseConfig
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	KeyPrefix    string
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	Path     string
}

// SchedulerConfig represents scheduler configuration
type SchedulerConfig struct {
	Enabled         bool
	RefreshInterval time.Duration
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetServerConfig() ServerConfig
	GetWeatherConfig() WeatherConfig
	GetGeocodingConfig() GeocodingConfig
	GetLocationConfig() LocationConfig
	GetStoreConfig() StoreConfig
	GetSchedulerConfig() SchedulerConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordProviderCall(ctx context.Context, provider string, success bool, duration time.Duration)
	RecordGeocodingCall(ctx context.Context, operation string, success bool)
	RecordRefresh(ctx context.Context, success bool)
	RecordStoreOperation(ctx context.Context, operation string, success bool)
}
