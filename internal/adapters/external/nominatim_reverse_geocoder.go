package external

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"meteorenard.app/internal/core/location"
	"meteorenard.app/internal/ports"
)

const (
	nominatimName             = "Nominatim"
	nominatimDefaultBaseURL   = "https://nominatim.openstreetmap.org"
	nominatimDefaultUserAgent = "MeteoRenard/1.0"
)

// NominatimReverseGeocoder implements ReverseGeocoder port with OpenStreetMap
// Nominatim. All calls share one throttle.
type NominatimReverseGeocoder struct {
	baseURL   string
	userAgent string
	client    HTTPClient
	throttle  *Throttle
	logger    ports.Logger
	metrics   ports.MetricsCollector
}

// NominatimReverseGeocoderParams holds parameters for creating the reverse
// geocoder. Throttle defaults to one call per second; Metrics is optional.
type NominatimReverseGeocoderParams struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Throttle  *Throttle
	Logger    ports.Logger
	Metrics   ports.MetricsCollector
}

type nominatimResponse struct {
	Address *struct {
		City         string `json:"city"`
		Town         string `json:"town"`
		Village      string `json:"village"`
		Municipality string `json:"municipality"`
		County       string `json:"county"`
	} `json:"address"`
	DisplayName string `json:"display_name"`
}

func NewNominatimReverseGeocoder(params NominatimReverseGeocoderParams) *NominatimReverseGeocoder {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = nominatimDefaultBaseURL
	}
	userAgent := params.UserAgent
	if userAgent == "" {
		userAgent = nominatimDefaultUserAgent
	}
	throttle := params.Throttle
	if throttle == nil {
		throttle = NewThrottle(ThrottleParams{MinInterval: DefaultMinInterval})
	}

	return &NominatimReverseGeocoder{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    newHTTPClient(params.Timeout),
		throttle:  throttle,
		logger:    params.Logger,
		metrics:   params.Metrics,
	}
}

// ReverseGeocode names the locality at a coordinate. It returns nil when
// the response carries no city, town, village, municipality or county.
func (g *NominatimReverseGeocoder) ReverseGeocode(ctx context.Context, latitude, longitude float64) (*location.Location, error) {
	if err := g.throttle.Wait(ctx); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	query.Set("format", "json")
	query.Set("accept-language", "fr")
	query.Set("zoom", "10")

	header := http.Header{}
	header.Set("User-Agent", g.userAgent)

	var resp nominatimResponse
	err := getJSON(ctx, g.client, g.logger, nominatimName, g.baseURL+"/reverse", query, header, &resp)
	if g.metrics != nil {
		g.metrics.RecordGeocodingCall(ctx, "reverse", err == nil)
	}
	if err != nil {
		return nil, err
	}

	name := resp.placeName()
	if name == "" {
		g.logger.Warn("No place name in reverse geocoding response",
			ports.F("latitude", latitude),
			ports.F("longitude", longitude))
		return nil, nil
	}
	return &location.Location{Name: name, Latitude: latitude, Longitude: longitude}, nil
}

func (r nominatimResponse) placeName() string {
	if r.Address == nil {
		return ""
	}
	for _, candidate := range []string{
		r.Address.City,
		r.Address.Town,
		r.Address.Village,
		r.Address.Municipality,
		r.Address.County,
	} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}
