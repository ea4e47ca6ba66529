package external

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"meteorenard.app/internal/core/location"
	"meteorenard.app/internal/core/weather"
	"meteorenard.app/internal/ports"
	"meteorenard.app/pkg/errors"
)

const (
	openMeteoName           = "Open-Meteo"
	openMeteoDefaultBaseURL = "https://api.open-meteo.com/v1"
	openMeteoHourlyFields   = "temperature_2m,weathercode,apparent_temperature,relativehumidity_2m,windspeed_10m,precipitation_probability,precipitation"
	openMeteoDailyFields    = "temperature_2m_max,temperature_2m_min,weathercode,precipitation_probability_max"
	// today plus the ten days that are kept
	openMeteoForecastDays = 11
	openMeteoTimeLayout   = "2006-01-02T15:04"
)

// OpenMeteoProviderAdapter implements WeatherProvider port for Open-Meteo
type OpenMeteoProviderAdapter struct {
	baseURL string
	client  HTTPClient
	logger  ports.Logger
	now     func() time.Time
}

// OpenMeteoProviderParams holds parameters for creating Open-Meteo provider
type OpenMeteoProviderParams struct {
	BaseURL string
	Timeout time.Duration
	Logger  ports.Logger
	Clock   func() time.Time
}

// OpenMeteoResponse represents the subset of the forecast response we read.
// Sections are pointers so a missing section is told apart from an empty one.
type OpenMeteoResponse struct {
	UTCOffsetSeconds int               `json:"utc_offset_seconds"`
	CurrentWeather   *OpenMeteoCurrent `json:"current_weather"`
	Hourly           *OpenMeteoHourly  `json:"hourly"`
	Daily            *OpenMeteoDaily   `json:"daily"`
}

// OpenMeteoCurrent is the current_weather section
type OpenMeteoCurrent struct {
	Temperature *float64 `json:"temperature"`
	WeatherCode *int     `json:"weathercode"`
}

// OpenMeteoHourly holds the parallel hourly arrays; null entries stay nil
type OpenMeteoHourly struct {
	Time                     []string   `json:"time"`
	Temperature              []*float64 `json:"temperature_2m"`
	WeatherCode              []*int     `json:"weathercode"`
	ApparentTemperature      []*float64 `json:"apparent_temperature"`
	RelativeHumidity         []*float64 `json:"relativehumidity_2m"`
	WindSpeed                []*float64 `json:"windspeed_10m"`
	PrecipitationProbability []*float64 `json:"precipitation_probability"`
	Precipitation            []*float64 `json:"precipitation"`
}

// OpenMeteoDaily holds the parallel daily arrays; null entries stay nil
type OpenMeteoDaily struct {
	Time                        []string   `json:"time"`
	TemperatureMax              []*float64 `json:"temperature_2m_max"`
	TemperatureMin              []*float64 `json:"temperature_2m_min"`
	WeatherCode                 []*int     `json:"weathercode"`
	PrecipitationProbabilityMax []*float64 `json:"precipitation_probability_max"`
}

// NewOpenMeteoProviderAdapter creates a new Open-Meteo provider adapter
func NewOpenMeteoProviderAdapter(params OpenMeteoProviderParams) *OpenMeteoProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = openMeteoDefaultBaseURL
	}
	clock := params.Clock
	if clock == nil {
		clock = time.Now
	}

	return &OpenMeteoProviderAdapter{
		baseURL: baseURL,
		client:  newHTTPClient(params.Timeout),
		logger:  params.Logger,
		now:     clock,
	}
}

// FetchWeather retrieves current, hourly and daily forecasts at the location's coordinates
func (p *OpenMeteoProviderAdapter) FetchWeather(ctx context.Context, loc location.Location) (*weather.WeatherData, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	query.Set("current_weather", "true")
	query.Set("hourly", openMeteoHourlyFields)
	query.Set("daily", openMeteoDailyFields)
	query.Set("timezone", "auto")
	query.Set("forecast_days", strconv.Itoa(openMeteoForecastDays))

	var apiResp OpenMeteoResponse
	if err := getJSON(ctx, p.client, p.logger, openMeteoName, p.baseURL+"/forecast", query, nil, &apiResp); err != nil {
		return nil, err
	}

	return adaptOpenMeteo(&apiResp, loc.Name, p.now())
}

// GetProviderName returns the name of this weather provider
func (p *OpenMeteoProviderAdapter) GetProviderName() string {
	return openMeteoName
}

func adaptOpenMeteo(resp *OpenMeteoResponse, locationName string, now time.Time) (*weather.WeatherData, error) {
	if err := checkOpenMeteoShape(resp); err != nil {
		return nil, err
	}

	zone := time.FixedZone("", resp.UTCOffsetSeconds)
	h := resp.Hourly

	hourly := make([]weather.HourlyWeather, 0, weather.MaxHourly)
	for i, raw := range h.Time {
		if len(hourly) == weather.MaxHourly {
			break
		}
		ts, err := time.ParseInLocation(openMeteoTimeLayout, raw, zone)
		if err != nil {
			return nil, errors.NewProviderError(fmt.Sprintf("invalid %s hourly timestamp %q", openMeteoName, raw), err)
		}
		if ts.Before(now) {
			continue
		}
		// an hour without temperature or code cannot be shown
		if h.Temperature[i] == nil || h.WeatherCode[i] == nil {
			continue
		}
		hourly = append(hourly, weather.HourlyWeather{
			Time:                     weather.FormatHourLabel(ts),
			Temp:                     round(*h.Temperature[i]),
			Condition:                weather.MapWMOCode(*h.WeatherCode[i]),
			FeelsLike:                roundPtr(h.ApparentTemperature[i]),
			Humidity:                 h.RelativeHumidity[i],
			WindSpeed:                roundPtr(h.WindSpeed[i]),
			PrecipitationProbability: h.PrecipitationProbability[i],
			Precipitation:            h.Precipitation[i],
		})
	}

	d := resp.Daily
	daily := make([]weather.DailyWeather, 0, weather.MaxDaily)
	for i := 1; i < len(d.Time) && len(daily) < weather.MaxDaily; i++ {
		if d.TemperatureMin[i] == nil || d.TemperatureMax[i] == nil || d.WeatherCode[i] == nil {
			continue
		}
		label, err := weather.DayLabel(d.Time[i])
		if err != nil {
			return nil, errors.NewProviderError(fmt.Sprintf("invalid %s daily date", openMeteoName), err)
		}
		daily = append(daily, weather.DailyWeather{
			Date:                     d.Time[i],
			DayLabel:                 label,
			TempLow:                  round(*d.TemperatureMin[i]),
			TempHigh:                 round(*d.TemperatureMax[i]),
			Condition:                weather.MapWMOCode(*d.WeatherCode[i]),
			PrecipitationProbability: d.PrecipitationProbabilityMax[i],
		})
	}

	code := *resp.CurrentWeather.WeatherCode
	return &weather.WeatherData{
		Current: weather.CurrentWeather{
			Location:    locationName,
			Temp:        round(*resp.CurrentWeather.Temperature),
			Condition:   weather.MapWMOCode(code),
			Description: weather.DescribeWMOCode(code),
		},
		Hourly: hourly,
		Daily:  daily,
		Zone:   zone,
	}, nil
}

// checkOpenMeteoShape rejects responses missing a required section or whose
// parallel arrays disagree in length
func checkOpenMeteoShape(resp *OpenMeteoResponse) error {
	switch {
	case resp.CurrentWeather == nil:
		return missingSection(openMeteoName, "current_weather")
	case resp.CurrentWeather.Temperature == nil:
		return missingSection(openMeteoName, "current_weather.temperature")
	case resp.CurrentWeather.WeatherCode == nil:
		return missingSection(openMeteoName, "current_weather.weathercode")
	case resp.Hourly == nil || resp.Hourly.Time == nil:
		return missingSection(openMeteoName, "hourly.time")
	case resp.Daily == nil || resp.Daily.Time == nil:
		return missingSection(openMeteoName, "daily.time")
	}

	h := resp.Hourly
	n := len(h.Time)
	hourlyLens := map[string]int{
		"temperature_2m":            len(h.Temperature),
		"weathercode":               len(h.WeatherCode),
		"apparent_temperature":      len(h.ApparentTemperature),
		"relativehumidity_2m":       len(h.RelativeHumidity),
		"windspeed_10m":             len(h.WindSpeed),
		"precipitation_probability": len(h.PrecipitationProbability),
		"precipitation":             len(h.Precipitation),
	}
	for field, l := range hourlyLens {
		if l != n {
			return errors.NewProviderError(
				fmt.Sprintf("%s hourly %s has %d values for %d timestamps", openMeteoName, field, l, n), nil)
		}
	}

	d := resp.Daily
	n = len(d.Time)
	dailyLens := map[string]int{
		"temperature_2m_max":            len(d.TemperatureMax),
		"temperature_2m_min":            len(d.TemperatureMin),
		"weathercode":                   len(d.WeatherCode),
		"precipitation_probability_max": len(d.PrecipitationProbabilityMax),
	}
	for field, l := range dailyLens {
		if l != n {
			return errors.NewProviderError(
				fmt.Sprintf("%s daily %s has %d values for %d dates", openMeteoName, field, l, n), nil)
		}
	}
	return nil
}

func missingSection(provider, section string) error {
	return errors.NewProviderError(fmt.Sprintf("%s response is missing %s", provider, section), nil)
}
