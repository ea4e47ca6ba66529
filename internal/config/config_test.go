package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"meteorenard.app/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		os.Clearenv()

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 8080, config.Server.Port)
		assert.Equal(t, "info", config.Log.Level)
		assert.Empty(t, config.Log.FilePath)
		assert.Equal(t, "open-meteo", config.Weather.Provider)
		assert.Equal(t, "https://api.open-meteo.com/v1", config.Weather.OpenMeteoBaseURL)
		assert.Equal(t, "https://api.weather.gc.ca", config.Weather.MSCGeoMetBaseURL)
		assert.Equal(t, 10, config.Weather.HTTPTimeoutSeconds)
		assert.True(t, config.Weather.EnableLogging)
		assert.Equal(t, "https://geocoding-api.open-meteo.com/v1", config.Geocoding.SearchBaseURL)
		assert.Equal(t, "https://nominatim.openstreetmap.org", config.Geocoding.ReverseBaseURL)
		assert.Equal(t, "MeteoRenard/1.0", config.Geocoding.UserAgent)
		assert.Equal(t, 1000, config.Geocoding.MinIntervalMillis)
		assert.Equal(t, "Montréal", config.Location.DefaultName)
		assert.Equal(t, 45.5017, config.Location.DefaultLatitude)
		assert.Equal(t, -73.5673, config.Location.DefaultLongitude)
		assert.Equal(t, 10, config.Location.GeolocationTimeoutSeconds)
		assert.Equal(t, StoreTypeMemory, config.Store.Type)
		assert.Equal(t, "meteorenard:", config.Store.Redis.KeyPrefix)
		assert.Equal(t, "sqlite", config.Store.Database.Driver)
		assert.True(t, config.Scheduler.Enabled)
		assert.Equal(t, 10, config.Scheduler.RefreshIntervalMinutes)
	})

	t.Run("CustomValues", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("WEATHER_PROVIDER", "msc-geomet")
		t.Setenv("HTTP_TIMEOUT_SECONDS", "5")
		t.Setenv("WEATHER_ENABLE_LOGGING", "false")
		t.Setenv("DEFAULT_LOCATION_NAME", "Québec")
		t.Setenv("DEFAULT_LOCATION_LATITUDE", "46.8139")
		t.Setenv("DEFAULT_LOCATION_LONGITUDE", "-71.2080")
		t.Setenv("STORE_TYPE", "redis")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("REFRESH_INTERVAL_MINUTES", "30")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 9090, config.Server.Port)
		assert.Equal(t, "debug", config.Log.Level)
		assert.Equal(t, "msc-geomet", config.Weather.Provider)
		assert.Equal(t, 5, config.Weather.HTTPTimeoutSeconds)
		assert.False(t, config.Weather.EnableLogging)
		assert.Equal(t, "Québec", config.Location.DefaultName)
		assert.Equal(t, 46.8139, config.Location.DefaultLatitude)
		assert.Equal(t, StoreTypeRedis, config.Store.Type)
		assert.Equal(t, "redis:6379", config.Store.Redis.Addr)
		assert.Equal(t, 2, config.Store.Redis.DB)
		assert.Equal(t, 30, config.Scheduler.RefreshIntervalMinutes)
	})

	t.Run("InvalidValues", func(t *testing.T) {
		tests := []struct {
			name     string
			env      map[string]string
			errorMsg string
		}{
			{"Port", map[string]string{"SERVER_PORT": "70000"}, "SERVER_PORT must be between 1 and 65535"},
			{"LogLevel", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL must be one of: debug, info, warn, error"},
			{"Provider", map[string]string{"WEATHER_PROVIDER": "weatherapi"}, "WEATHER_PROVIDER must be one of: open-meteo, msc-geomet"},
			{"ProviderURL", map[string]string{"OPEN_METEO_BASE_URL": "api.open-meteo.com"}, "OPEN_METEO_BASE_URL must start with http:// or https://"},
			{"Interval", map[string]string{"REVERSE_GEOCODING_MIN_INTERVAL_MS": "200"}, "REVERSE_GEOCODING_MIN_INTERVAL_MS must be at least 1000"},
			{"Latitude", map[string]string{"DEFAULT_LOCATION_LATITUDE": "95"}, "DEFAULT_LOCATION_LATITUDE must be between -90 and 90"},
			{"StoreType", map[string]string{"STORE_TYPE": "etcd"}, "STORE_TYPE must be one of: memory, redis, database"},
			{"RedisDB", map[string]string{"STORE_TYPE": "redis", "REDIS_DB": "16"}, "REDIS_DB must be between 0 and 15"},
			{"Driver", map[string]string{"STORE_TYPE": "database", "DB_DRIVER": "mysql"}, "DB_DRIVER must be one of: postgres, sqlite"},
			{"SSLMode", map[string]string{"STORE_TYPE": "database", "DB_DRIVER": "postgres", "DB_SSL_MODE": "maybe"}, "DB_SSL_MODE must be one of"},
			{"Refresh", map[string]string{"REFRESH_INTERVAL_MINUTES": "0"}, "REFRESH_INTERVAL_MINUTES must be at least 1 minute"},
			{"Malformed", map[string]string{"SERVER_PORT": "eighty"}, "error processing config"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				os.Clearenv()
				for k, v := range tt.env {
					t.Setenv(k, v)
				}

				config, err := LoadConfig()
				assert.Nil(t, config)
				require.Error(t, err)
				assert.True(t, errors.IsConfigurationError(err))
				assert.Contains(t, err.Error(), tt.errorMsg)
			})
		}
	})

	t.Run("DisabledSchedulerSkipsInterval", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("REFRESH_ENABLED", "false")
		t.Setenv("REFRESH_INTERVAL_MINUTES", "0")

		_, err := LoadConfig()
		assert.NoError(t, err)
	})
}
