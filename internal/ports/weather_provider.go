package ports

import (
	"context"

	"meteorenard.app/internal/core/location"
	"meteorenard.app/internal/core/weather"
)

// WeatherProvider fetches a forecast from one upstream source and normalizes
// it into the canonical schema. Failures are provider errors that carry the
// upstream status or decode reason.
type WeatherProvider interface {
	FetchWeather(ctx context.Context, loc location.Location) (*weather.WeatherData, error)
	GetProviderName() string
}

// WeatherProviderFactory builds a provider from its identifier
type WeatherProviderFactory interface {
	Create(providerID string) (WeatherProvider, error)
	AvailableProviders() []string
}
