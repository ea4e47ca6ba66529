package external

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"meteorenard.app/internal/core/location"
	"meteorenard.app/internal/ports"
)

const (
	geocodingName           = "Geocoding"
	geocodingDefaultBaseURL = "https://geocoding-api.open-meteo.com/v1"
	geocodingMinQueryLength = 2
	geocodingDefaultCount   = 10
	geocodingDefaultLang    = "fr"
)

// OpenMeteoGeocoder implements Geocoder port with the Open-Meteo city search
type OpenMeteoGeocoder struct {
	baseURL string
	client  HTTPClient
	logger  ports.Logger
	metrics ports.MetricsCollector
}

// OpenMeteoGeocoderParams holds parameters for creating the geocoder. Metrics is optional.
type OpenMeteoGeocoderParams struct {
	BaseURL string
	Timeout time.Duration
	Logger  ports.Logger
	Metrics ports.MetricsCollector
}

type geocodingResponse struct {
	Results []struct {
		ID         int64   `json:"id"`
		Name       string  `json:"name"`
		Latitude   float64 `json:"latitude"`
		Longitude  float64 `json:"longitude"`
		Country    string  `json:"country"`
		Admin1     string  `json:"admin1"`
		Population int64   `json:"population"`
	} `json:"results"`
}

func NewOpenMeteoGeocoder(params OpenMeteoGeocoderParams) *OpenMeteoGeocoder {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = geocodingDefaultBaseURL
	}
	return &OpenMeteoGeocoder{
		baseURL: baseURL,
		client:  newHTTPClient(params.Timeout),
		logger:  params.Logger,
		metrics: params.Metrics,
	}
}

// SearchCities looks cities up by name. Queries shorter than two characters
// return no results without calling upstream.
func (g *OpenMeteoGeocoder) SearchCities(ctx context.Context, query string, count int, language string) ([]location.SearchResult, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < geocodingMinQueryLength {
		return []location.SearchResult{}, nil
	}
	if count <= 0 {
		count = geocodingDefaultCount
	}
	if language == "" {
		language = geocodingDefaultLang
	}

	params := url.Values{}
	params.Set("name", query)
	params.Set("count", strconv.Itoa(count))
	params.Set("language", language)
	params.Set("format", "json")

	var resp geocodingResponse
	err := getJSON(ctx, g.client, g.logger, geocodingName, g.baseURL+"/search", params, nil, &resp)
	if g.metrics != nil {
		g.metrics.RecordGeocodingCall(ctx, "search", err == nil)
	}
	if err != nil {
		return nil, err
	}

	results := make([]location.SearchResult, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, location.SearchResult{
			Name:       r.Name,
			Latitude:   r.Latitude,
			Longitude:  r.Longitude,
			Country:    r.Country,
			Admin1:     r.Admin1,
			Population: r.Population,
		})
	}
	return results, nil
}
