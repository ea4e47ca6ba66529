package ports

import (
	"context"
	"time"

	"meteorenard.app/internal/core/location"
)

// Geocoder searches cities by free-text name
type Geocoder interface {
	SearchCities(ctx context.Context, query string, count int, language string) ([]location.SearchResult, error)
}

// ReverseGeocoder names a coordinate. A nil location with a nil error means
// the upstream had no usable place name.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (*location.Location, error)
}

// PositionOptions mirrors the device geolocation request options
type PositionOptions struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaximumAge   time.Duration
}

// Position is a device-reported coordinate
type Position struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
}

// PositionSource is the one-shot device position capability. Failures are
// *location.PositionError values.
type PositionSource interface {
	CurrentPosition(ctx context.Context, opts PositionOptions) (*Position, error)
}
