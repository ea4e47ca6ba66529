// Package geolocation turns a device position into a named location
package geolocation

import (
	"context"
	stderrors "errors"
	"time"

	"meteorenard.app/internal/core/location"
	"meteorenard.app/internal/ports"
	"meteorenard.app/pkg/errors"
	"meteorenard.app/pkg/validation"
)

// DefaultTimeout bounds the position request when none is configured
const DefaultTimeout = 10 * time.Second

type Locator struct {
	reverse ports.ReverseGeocoder
	logger  ports.Logger
	timeout time.Duration
}

type LocatorDependencies struct {
	ReverseGeocoder ports.ReverseGeocoder
	Logger          ports.Logger
	Timeout         time.Duration
}

func NewLocator(deps LocatorDependencies) (*Locator, error) {
	if deps.ReverseGeocoder == nil {
		return nil, errors.NewValidationError("reverse geocoder is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	timeout := deps.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Locator{
		reverse: deps.ReverseGeocoder,
		logger:  deps.Logger,
		timeout: timeout,
	}, nil
}

// Locate asks source for the current position and names it by reverse
// geocoding. Position failures are geolocation errors wrapping a
// *location.PositionError. Reverse geocoding failures are not: the
// location is then named location.DefaultPositionName.
func (l *Locator) Locate(ctx context.Context, source ports.PositionSource) (location.Location, error) {
	pos, err := l.position(ctx, source)
	if err != nil {
		l.logger.Warn("Geolocation failed", ports.F("code", err.Code), ports.F("error", err.Message))
		return location.Location{}, errors.NewGeolocationError(err.Message, err)
	}

	named, geoErr := l.reverse.ReverseGeocode(ctx, pos.Latitude, pos.Longitude)
	if geoErr != nil {
		l.logger.Warn("Reverse geocoding failed, using default name",
			ports.F("latitude", pos.Latitude),
			ports.F("longitude", pos.Longitude),
			ports.F("error", geoErr))
	}
	if geoErr != nil || named == nil {
		return location.Location{
			Name:      location.DefaultPositionName,
			Latitude:  pos.Latitude,
			Longitude: pos.Longitude,
		}, nil
	}

	l.logger.Debug("Located device", ports.F("name", named.Name))
	return *named, nil
}

func (l *Locator) position(ctx context.Context, source ports.PositionSource) (*ports.Position, *location.PositionError) {
	if source == nil {
		return nil, location.NewPositionError(location.NotSupported)
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	pos, err := source.CurrentPosition(ctx, ports.PositionOptions{
		HighAccuracy: true,
		Timeout:      l.timeout,
	})
	if err == nil {
		if pos == nil || !validation.IsValidLatitude(pos.Latitude) || !validation.IsValidLongitude(pos.Longitude) {
			return nil, location.NewPositionError(location.PositionUnavailable)
		}
		return pos, nil
	}

	var posErr *location.PositionError
	switch {
	case stderrors.As(err, &posErr):
		return nil, posErr
	case stderrors.Is(err, context.DeadlineExceeded):
		return nil, location.NewPositionError(location.Timeout)
	default:
		return nil, &location.PositionError{
			Code:    location.PositionUnavailable,
			Message: "Erreur lors de la récupération de votre position.",
		}
	}
}
