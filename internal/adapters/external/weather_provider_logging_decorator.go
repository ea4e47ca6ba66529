package external

import (
	"context"
	"time"

	"meteorenard.app/internal/core/location"
	"meteorenard.app/internal/core/weather"
	"meteorenard.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) ports.WeatherProvider {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// FetchWeather wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) FetchWeather(ctx context.Context, loc location.Location) (*weather.WeatherData, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("location", loc.Name),
		ports.F("event", "request"))

	startTime := time.Now()
	data, err := d.provider.FetchWeather(ctx, loc)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather API request failed",
			ports.F("provider", providerName),
			ports.F("location", loc.Name),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("location", loc.Name),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("temperature", data.Current.Temp),
		ports.F("condition", string(data.Current.Condition)),
		ports.F("hourly", len(data.Hourly)),
		ports.F("daily", len(data.Daily)))

	return data, nil
}

// GetProviderName returns the wrapped provider's display name
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}

// WeatherProviderMetricsDecorator records call outcome and latency per provider
type WeatherProviderMetricsDecorator struct {
	provider ports.WeatherProvider
	metrics  ports.MetricsCollector
}

// NewWeatherProviderMetricsDecorator creates a new metrics decorator for weather providers
func NewWeatherProviderMetricsDecorator(provider ports.WeatherProvider, metrics ports.MetricsCollector) ports.WeatherProvider {
	return &WeatherProviderMetricsDecorator{
		provider: provider,
		metrics:  metrics,
	}
}

func (d *WeatherProviderMetricsDecorator) FetchWeather(ctx context.Context, loc location.Location) (*weather.WeatherData, error) {
	startTime := time.Now()
	data, err := d.provider.FetchWeather(ctx, loc)
	d.metrics.RecordProviderCall(ctx, d.provider.GetProviderName(), err == nil, time.Since(startTime))
	return data, err
}

func (d *WeatherProviderMetricsDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}
