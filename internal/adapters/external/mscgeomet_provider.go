package external

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata"

	"meteorenard.app/internal/core/location"
	"meteorenard.app/internal/core/weather"
	"meteorenard.app/internal/ports"
)

const (
	mscGeoMetName           = "Environnement Canada"
	mscGeoMetDefaultBaseURL = "https://api.weather.gc.ca"
)

var weekdayNames = []struct {
	name  string
	label string
}{
	{"Sunday", "Sun"},
	{"Monday", "Mon"},
	{"Tuesday", "Tue"},
	{"Wednesday", "Wed"},
	{"Thursday", "Thu"},
	{"Friday", "Fri"},
	{"Saturday", "Sat"},
	{"Tonight", "Tonight"},
}

// MSCGeoMetProviderAdapter implements WeatherProvider port for the
// Environment Canada city page API. Only the cities of its code table are
// served; any other location gets the nearest supported city.
type MSCGeoMetProviderAdapter struct {
	baseURL string
	client  HTTPClient
	logger  ports.Logger
	now     func() time.Time
}

// MSCGeoMetProviderParams holds parameters for creating MSC-GeoMet provider
type MSCGeoMetProviderParams struct {
	BaseURL string
	Timeout time.Duration
	Logger  ports.Logger
	Clock   func() time.Time
}

// mscNumber keeps a null value as nil
type mscNumber struct {
	Value struct {
		En *float64 `json:"en"`
	} `json:"value"`
}

type mscText struct {
	En string `json:"en"`
	Fr string `json:"fr"`
}

type mscTemperature struct {
	Class mscText `json:"class"`
	Value struct {
		En *float64 `json:"en"`
	} `json:"value"`
}

type mscForecastPeriod struct {
	Period struct {
		TextForecastName mscText `json:"textForecastName"`
	} `json:"period"`
	TextSummary         *mscText `json:"textSummary"`
	CloudPrecip         *mscText `json:"cloudPrecip"`
	AbbreviatedForecast *struct {
		TextSummary mscText `json:"textSummary"`
	} `json:"abbreviatedForecast"`
	Temperatures *struct {
		Temperature []mscTemperature `json:"temperature"`
	} `json:"temperatures"`
}

type mscHourlyForecast struct {
	Timestamp   string     `json:"timestamp"`
	Temperature mscNumber  `json:"temperature"`
	Condition   mscText    `json:"condition"`
	Lop         *mscNumber `json:"lop"`
}

// MSCGeoMetResponse represents the city page feature we read
type MSCGeoMetResponse struct {
	Properties *mscProperties `json:"properties"`
}

type mscProperties struct {
	CurrentConditions *struct {
		Temperature *mscNumber `json:"temperature"`
		Condition   *mscText   `json:"condition"`
	} `json:"currentConditions"`
	ForecastGroup struct {
		Forecasts []mscForecastPeriod `json:"forecasts"`
	} `json:"forecastGroup"`
	HourlyForecastGroup struct {
		HourlyForecasts []mscHourlyForecast `json:"hourlyForecasts"`
	} `json:"hourlyForecastGroup"`
}

// NewMSCGeoMetProviderAdapter creates a new MSC-GeoMet provider adapter
func NewMSCGeoMetProviderAdapter(params MSCGeoMetProviderParams) *MSCGeoMetProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = mscGeoMetDefaultBaseURL
	}
	clock := params.Clock
	if clock == nil {
		clock = time.Now
	}

	return &MSCGeoMetProviderAdapter{
		baseURL: baseURL,
		client:  newHTTPClient(params.Timeout),
		logger:  params.Logger,
		now:     clock,
	}
}

// FetchWeather retrieves the city page of the city resolved for loc
func (p *MSCGeoMetProviderAdapter) FetchWeather(ctx context.Context, loc location.Location) (*weather.WeatherData, error) {
	code := resolveCityCode(loc)
	p.logger.Debug("Resolved MSC city code", ports.F("location", loc.Name), ports.F("code", code))

	endpoint := fmt.Sprintf("%s/collections/citypageweather-realtime/items/%s", p.baseURL, url.PathEscape(code))
	query := url.Values{}
	query.Set("f", "json")
	query.Set("lang", "en-CA")

	var apiResp MSCGeoMetResponse
	if err := getJSON(ctx, p.client, p.logger, mscGeoMetName, endpoint, query, nil, &apiResp); err != nil {
		return nil, err
	}

	zone, err := time.LoadLocation(cityZone(code))
	if err != nil {
		p.logger.Warn("Unknown city time zone, using local time", ports.F("code", code), ports.F("error", err))
		zone = time.Local
	}
	return adaptMSCGeoMet(&apiResp, loc.Name, p.now().In(zone))
}

// GetProviderName returns the name of this weather provider
func (p *MSCGeoMetProviderAdapter) GetProviderName() string {
	return mscGeoMetName
}

func adaptMSCGeoMet(resp *MSCGeoMetResponse, locationName string, now time.Time) (*weather.WeatherData, error) {
	props := resp.Properties
	switch {
	case props == nil:
		return nil, missingSection(mscGeoMetName, "properties")
	case props.CurrentConditions == nil:
		return nil, missingSection(mscGeoMetName, "properties.currentConditions")
	case props.CurrentConditions.Temperature == nil || props.CurrentConditions.Temperature.Value.En == nil:
		return nil, missingSection(mscGeoMetName, "properties.currentConditions.temperature")
	case props.CurrentConditions.Condition == nil:
		return nil, missingSection(mscGeoMetName, "properties.currentConditions.condition")
	}
	current := props.CurrentConditions
	currentTemp := *current.Temperature.Value.En

	hourly := make([]weather.HourlyWeather, 0, weather.MaxHourly)
	for _, h := range props.HourlyForecastGroup.HourlyForecasts {
		if len(hourly) == weather.MaxHourly {
			break
		}
		if h.Temperature.Value.En == nil {
			continue
		}
		label := h.Timestamp
		if ts, err := time.Parse(time.RFC3339, h.Timestamp); err == nil {
			label = weather.FormatHourLabel(ts.In(now.Location()))
		}
		var lop *float64
		if h.Lop != nil {
			lop = h.Lop.Value.En
		}
		hourly = append(hourly, weather.HourlyWeather{
			Time:                     label,
			Temp:                     round(*h.Temperature.Value.En),
			Condition:                weather.MapConditionText(h.Condition.En),
			PrecipitationProbability: lop,
		})
	}

	return &weather.WeatherData{
		Current: weather.CurrentWeather{
			Location:    locationName,
			Temp:        round(currentTemp),
			Condition:   weather.MapConditionText(current.Condition.En),
			Description: current.Condition.En,
		},
		Hourly: hourly,
		Daily:  assembleMSCDaily(props.ForecastGroup.Forecasts, currentTemp, current.Condition.En, now),
		Zone:   now.Location(),
	}, nil
}

// assembleMSCDaily folds day and night periods into at most ten days. Night
// periods are skipped but still lend their low to the preceding day.
func assembleMSCDaily(periods []mscForecastPeriod, currentTemp float64, currentCondition string, now time.Time) []weather.DailyWeather {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	seen := make(map[string]bool)
	daily := make([]weather.DailyWeather, 0, weather.MaxDaily)

	for i, period := range periods {
		name := period.Period.TextForecastName.En
		if strings.Contains(strings.ToLower(name), "night") {
			continue
		}
		label := periodDayLabel(name)
		if seen[label] || len(daily) >= weather.MaxDaily {
			continue
		}

		high, hasHigh := period.temperature("high")
		low, hasLow := period.temperature("low")
		if !hasLow && i+1 < len(periods) {
			low, hasLow = periods[i+1].temperature("low")
		}
		if !hasHigh {
			high = currentTemp
		}
		if !hasLow {
			low = currentTemp
		}

		daily = append(daily, weather.DailyWeather{
			Date:      today.AddDate(0, 0, len(daily)+1).Format("2006-01-02"),
			DayLabel:  label,
			TempLow:   round(low),
			TempHigh:  round(high),
			Condition: weather.MapConditionText(period.conditionText(currentCondition)),
		})
		seen[label] = true
	}
	return daily
}

func (p mscForecastPeriod) temperature(class string) (float64, bool) {
	if p.Temperatures == nil {
		return 0, false
	}
	for _, t := range p.Temperatures.Temperature {
		if t.Class.En == class && t.Value.En != nil {
			return *t.Value.En, true
		}
	}
	return 0, false
}

func (p mscForecastPeriod) conditionText(fallback string) string {
	switch {
	case p.CloudPrecip != nil && p.CloudPrecip.En != "":
		return p.CloudPrecip.En
	case p.AbbreviatedForecast != nil && p.AbbreviatedForecast.TextSummary.En != "":
		return p.AbbreviatedForecast.TextSummary.En
	case p.TextSummary != nil && p.TextSummary.En != "":
		return p.TextSummary.En
	default:
		return fallback
	}
}

func periodDayLabel(name string) string {
	for _, w := range weekdayNames {
		if strings.Contains(name, w.name) {
			return w.label
		}
	}
	return name
}
