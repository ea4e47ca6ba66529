package external

import (
	"context"

	"meteorenard.app/internal/core/location"
	"meteorenard.app/internal/ports"
)

// ReportedPosition is a PositionSource for coordinates a client measured
// itself and sent along with its request.
type ReportedPosition struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
}

func (p ReportedPosition) CurrentPosition(ctx context.Context, _ ports.PositionOptions) (*ports.Position, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &ports.Position{Latitude: p.Latitude, Longitude: p.Longitude, Accuracy: p.Accuracy}, nil
}

// ReportedPositionError is a PositionSource for a client whose own position
// request failed, such as a denied permission prompt.
type ReportedPositionError struct {
	Code location.PositionErrorCode
}

func (p ReportedPositionError) CurrentPosition(context.Context, ports.PositionOptions) (*ports.Position, error) {
	return nil, location.NewPositionError(p.Code)
}
