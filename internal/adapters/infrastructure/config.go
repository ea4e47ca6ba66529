package infrastructure

import (
	"time"

	"meteorenard.app/internal/config"
	"meteorenard.app/internal/core/location"
	"meteorenard.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		Provider:         c.config.Weather.Provider,
		OpenMeteoBaseURL: c.config.Weather.OpenMeteoBaseURL,
		MSCGeoMetBaseURL: c.config.Weather.MSCGeoMetBaseURL,
		HTTPTimeout:      time.Duration(c.config.Weather.HTTPTimeoutSeconds) * time.Second,
		EnableLogging:    c.config.Weather.EnableLogging,
	}
}

// GetGeocodingConfig shares the weather HTTP timeout
func (c *ConfigProviderAdapter) GetGeocodingConfig() ports.GeocodingConfig {
	return ports.GeocodingConfig{
		SearchBaseURL:  c.config.Geocoding.SearchBaseURL,
		ReverseBaseURL: c.config.Geocoding.ReverseBaseURL,
		UserAgent:      c.config.Geocoding.UserAgent,
		MinInterval:    time.Duration(c.config.Geocoding.MinIntervalMillis) * time.Millisecond,
		HTTPTimeout:    time.Duration(c.config.Weather.HTTPTimeoutSeconds) * time.Second,
	}
}

func (c *ConfigProviderAdapter) GetLocationConfig() ports.LocationConfig {
	return ports.LocationConfig{
		Default: location.Location{
			Name:      c.config.Location.DefaultName,
			Latitude:  c.config.Location.DefaultLatitude,
			Longitude: c.config.Location.DefaultLongitude,
		},
		GeolocationTimeout: time.Duration(c.config.Location.GeolocationTimeoutSeconds) * time.Second,
	}
}

func (c *ConfigProviderAdapter) GetStoreConfig() ports.StoreConfig {
	return ports.StoreConfig{
		Type: string(c.config.Store.Type),
		Redis: ports.RedisConfig{
			Addr:         c.config.Store.Redis.Addr,
			Password:     c.config.Store.Redis.Password,
			DB:           c.config.Store.Redis.DB,
			KeyPrefix:    c.config.Store.Redis.KeyPrefix,
			DialTimeout:  c.config.Store.Redis.DialTimeout,
			ReadTimeout:  c.config.Store.Redis.ReadTimeout,
			WriteTimeout: c.config.Store.Redis.WriteTimeout,
		},
		Database: ports.DatabaseConfig{
			Driver:   c.config.Store.Database.Driver,
			Host:     c.config.Store.Database.Host,
			Port:     c.config.Store.Database.Port,
			User:     c.config.Store.Database.User,
			Password: c.config.Store.Database.Password,
			Name:     c.config.Store.Database.Name,
			SSLMode:  c.config.Store.Database.SSLMode,
			Path:     c.config.Store.Database.Path,
		},
	}
}

func (c *ConfigProviderAdapter) GetSchedulerConfig() ports.SchedulerConfig {
	return ports.SchedulerConfig{
		Enabled:         c.config.Scheduler.Enabled,
		RefreshInterval: time.Duration(c.config.Scheduler.RefreshIntervalMinutes) * time.Minute,
	}
}
