package location

import (
	"fmt"
	"math"

	"meteorenard.app/pkg/errors"
	"meteorenard.app/pkg/validation"
)

// ProximityThreshold is the per-axis coordinate distance, in degrees, under
// which two locations are considered the same place.
const ProximityThreshold = 0.01

// DefaultPositionName names a located position when reverse geocoding yields nothing
const DefaultPositionName = "Ma position"

// Location is a named point. Values are replaced wholesale, never edited in place.
type Location struct {
	Name      string  `json:"name" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// Validate checks the name and coordinate ranges
func (l Location) Validate() error {
	if !validation.IsNotEmpty(l.Name) {
		return errors.NewValidationError("location name is required")
	}
	return validation.Struct(l)
}

// IsNear reports whether both coordinates differ by less than ProximityThreshold
func (l Location) IsNear(other Location) bool {
	return math.Abs(l.Latitude-other.Latitude) < ProximityThreshold &&
		math.Abs(l.Longitude-other.Longitude) < ProximityThreshold
}

// SameAs reports whether other duplicates l in a saved list: identical name
// (case-sensitive) or nearby coordinates.
func (l Location) SameAs(other Location) bool {
	return l.Name == other.Name || l.IsNear(other)
}

func (l Location) String() string {
	return fmt.Sprintf("%s (%.4f, %.4f)", l.Name, l.Latitude, l.Longitude)
}

// SearchResult is a city returned by a geocoding search
type SearchResult struct {
	Name       string  `json:"name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Country    string  `json:"country"`
	Admin1     string  `json:"admin1,omitempty"`
	Population int64   `json:"population,omitempty"`
}

// ToLocation converts a search hit, qualifying the name with its province/state
func (r SearchResult) ToLocation() Location {
	name := r.Name
	if r.Admin1 != "" {
		name = fmt.Sprintf("%s, %s", r.Name, r.Admin1)
	}
	return Location{
		Name:      name,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}

// PopularCities returns the quick-pick cities offered before any search
func PopularCities() []Location {
	return []Location{
		{Name: "Montréal, QC", Latitude: 45.5017, Longitude: -73.5673},
		{Name: "Québec, QC", Latitude: 46.8139, Longitude: -71.2080},
		{Name: "Laval, QC", Latitude: 45.6066, Longitude: -73.7124},
		{Name: "Gatineau, QC", Latitude: 45.4765, Longitude: -75.7013},
		{Name: "Longueuil, QC", Latitude: 45.5312, Longitude: -73.5182},
		{Name: "Sherbrooke, QC", Latitude: 45.4042, Longitude: -71.8929},
		{Name: "Trois-Rivières, QC", Latitude: 46.3432, Longitude: -72.5432},
		{Name: "Toronto, ON", Latitude: 43.6532, Longitude: -79.3832},
		{Name: "Vancouver, BC", Latitude: 49.2827, Longitude: -123.1207},
		{Name: "Calgary, AB", Latitude: 51.0447, Longitude: -114.0719},
	}
}

// PositionErrorCode classifies a failed device position request
type PositionErrorCode string

const (
	PermissionDenied    PositionErrorCode = "PERMISSION_DENIED"
	PositionUnavailable PositionErrorCode = "POSITION_UNAVAILABLE"
	Timeout             PositionErrorCode = "TIMEOUT"
	NotSupported        PositionErrorCode = "NOT_SUPPORTED"
)

// ParsePositionErrorCode accepts the four codes as reported by clients
func ParsePositionErrorCode(s string) (PositionErrorCode, bool) {
	switch code := PositionErrorCode(s); code {
	case PermissionDenied, PositionUnavailable, Timeout, NotSupported:
		return code, true
	default:
		return "", false
	}
}

// PositionError is returned by position sources. Every code is recoverable by user action.
type PositionError struct {
	Code    PositionErrorCode `json:"code"`
	Message string            `json:"message"`
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewPositionError builds a PositionError with the default message for code
func NewPositionError(code PositionErrorCode) *PositionError {
	return &PositionError{Code: code, Message: defaultPositionMessage(code)}
}

func defaultPositionMessage(code PositionErrorCode) string {
	switch code {
	case PermissionDenied:
		return "Permission de géolocalisation refusée. Veuillez autoriser l'accès à votre position."
	case Timeout:
		return "La demande de géolocalisation a expiré. Veuillez réessayer."
	case NotSupported:
		return "La géolocalisation n'est pas supportée."
	default:
		return "Position non disponible. Vérifiez que les services de localisation sont activés."
	}
}
