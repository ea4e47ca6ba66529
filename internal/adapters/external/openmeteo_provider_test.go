package external

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"meteorenard.app/internal/core/location"
	"meteorenard.app/internal/core/weather"
	"meteorenard.app/internal/mocks"
	"meteorenard.app/pkg/errors"
)

var montreal = location.Location{Name: "Montréal", Latitude: 45.5017, Longitude: -73.5673}

// Helper function to set up logger mock with variadic argument expectations
func setupLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)
	for n := 0; n <= 8; n++ {
		args := make([]interface{}, n)
		for i := range args {
			args[i] = mock.Anything
		}
		mockLogger.EXPECT().Debug(mock.Anything, args...).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, args...).Maybe()
		mockLogger.EXPECT().Warn(mock.Anything, args...).Maybe()
		mockLogger.EXPECT().Error(mock.Anything, args...).Maybe()
	}
	return mockLogger
}

func ptr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

// openMeteoFixture builds hourly entries from start and days of daily entries
// from start's date, in the EDT zone. Day i has a high of 20+2i and a low of 10.2+i.
func openMeteoFixture(start time.Time, hours, days int) OpenMeteoResponse {
	r := OpenMeteoResponse{
		UTCOffsetSeconds: -4 * 3600,
		CurrentWeather:   &OpenMeteoCurrent{Temperature: ptr(21.5), WeatherCode: intPtr(2)},
		Hourly:           &OpenMeteoHourly{Time: []string{}},
		Daily:            &OpenMeteoDaily{Time: []string{}},
	}

	for i := 0; i < hours; i++ {
		ts := start.Add(time.Duration(i) * time.Hour)
		r.Hourly.Time = append(r.Hourly.Time, ts.Format(openMeteoTimeLayout))
		r.Hourly.Temperature = append(r.Hourly.Temperature, ptr(10.4+float64(i)))
		r.Hourly.WeatherCode = append(r.Hourly.WeatherCode, intPtr(61))
		r.Hourly.ApparentTemperature = append(r.Hourly.ApparentTemperature, ptr(8.6))
		r.Hourly.RelativeHumidity = append(r.Hourly.RelativeHumidity, nil)
		r.Hourly.WindSpeed = append(r.Hourly.WindSpeed, ptr(12.5))
		r.Hourly.PrecipitationProbability = append(r.Hourly.PrecipitationProbability, ptr(40))
		r.Hourly.Precipitation = append(r.Hourly.Precipitation, ptr(0.2))
	}
	for i := 0; i < days; i++ {
		r.Daily.Time = append(r.Daily.Time, start.AddDate(0, 0, i).Format("2006-01-02"))
		r.Daily.TemperatureMax = append(r.Daily.TemperatureMax, ptr(20+2*float64(i)))
		r.Daily.TemperatureMin = append(r.Daily.TemperatureMin, ptr(10.2+float64(i)))
		r.Daily.WeatherCode = append(r.Daily.WeatherCode, intPtr(95))
		r.Daily.PrecipitationProbabilityMax = append(r.Daily.PrecipitationProbabilityMax, ptr(70))
	}
	return r
}

func serveJSON(t *testing.T, check func(r *http.Request), body interface{}) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(body))
	}))
}

func TestOpenMeteoProvider_FetchWeather_Success(t *testing.T) {
	edt := time.FixedZone("", -4*3600)
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, edt)
	now := time.Date(2024, 6, 1, 9, 15, 0, 0, edt)

	mockServer := serveJSON(t, func(r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "45.5017", q.Get("latitude"))
		assert.Equal(t, "-73.5673", q.Get("longitude"))
		assert.Equal(t, "true", q.Get("current_weather"))
		assert.Equal(t, "auto", q.Get("timezone"))
		assert.Equal(t, "11", q.Get("forecast_days"))
		assert.Contains(t, q.Get("hourly"), "precipitation_probability")
		assert.Contains(t, q.Get("daily"), "precipitation_probability_max")
	}, openMeteoFixture(start, 48, 11))
	defer mockServer.Close()

	provider := NewOpenMeteoProviderAdapter(OpenMeteoProviderParams{
		BaseURL: mockServer.URL,
		Logger:  setupLoggerMock(t),
		Clock:   func() time.Time { return now },
	})

	data, err := provider.FetchWeather(context.Background(), montreal)
	require.NoError(t, err)
	require.NoError(t, data.Validate())

	assert.Equal(t, weather.CurrentWeather{
		Location:    "Montréal",
		Temp:        22,
		Condition:   weather.PartlyCloudy,
		Description: "Partly cloudy",
	}, data.Current)

	require.Len(t, data.Hourly, 24)
	first := data.Hourly[0]
	assert.Equal(t, "10AM", first.Time)
	assert.Equal(t, 20, first.Temp)
	assert.Equal(t, weather.Rain, first.Condition)
	require.NotNil(t, first.FeelsLike)
	assert.Equal(t, 9, *first.FeelsLike)
	require.NotNil(t, first.WindSpeed)
	assert.Equal(t, 13, *first.WindSpeed)
	assert.Nil(t, first.Humidity)
	assert.Equal(t, 40.0, *first.PrecipitationProbability)
	assert.Equal(t, "9AM", data.Hourly[23].Time)

	require.Len(t, data.Daily, 10)
	assert.Equal(t, "2024-06-02", data.Daily[0].Date)
	assert.Equal(t, "Sun", data.Daily[0].DayLabel)
	assert.Equal(t, 11, data.Daily[0].TempLow)
	assert.Equal(t, 22, data.Daily[0].TempHigh, "today's entry is dropped")
	assert.Equal(t, weather.Thunderstorm, data.Daily[0].Condition)
	assert.Equal(t, "2024-06-11", data.Daily[9].Date)
	require.NotNil(t, data.Zone)
	assert.Equal(t, 10, data.LocalHour(time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)))
	assert.Equal(t, 40, data.Daily[9].TempHigh)
	assert.Equal(t, 20, data.Daily[9].TempLow)
}

func TestOpenMeteoProvider_FetchWeather_KeepsFutureHoursOnly(t *testing.T) {
	edt := time.FixedZone("", -4*3600)
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, edt)
	now := time.Date(2024, 6, 1, 20, 0, 0, 0, edt)

	mockServer := serveJSON(t, nil, openMeteoFixture(start, 24, 2))
	defer mockServer.Close()

	provider := NewOpenMeteoProviderAdapter(OpenMeteoProviderParams{
		BaseURL: mockServer.URL,
		Logger:  setupLoggerMock(t),
		Clock:   func() time.Time { return now },
	})

	data, err := provider.FetchWeather(context.Background(), montreal)
	require.NoError(t, err)
	require.Len(t, data.Hourly, 4)
	assert.Equal(t, "8PM", data.Hourly[0].Time)
	assert.Equal(t, "11PM", data.Hourly[3].Time)
	assert.Len(t, data.Daily, 1)
}

func TestOpenMeteoProvider_FetchWeather_SkipsNullEntries(t *testing.T) {
	edt := time.FixedZone("", -4*3600)
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, edt)
	now := start

	fixture := openMeteoFixture(start, 4, 4)
	fixture.Hourly.Temperature[1] = nil
	fixture.Hourly.WeatherCode[2] = nil
	fixture.Daily.TemperatureMax[1] = nil
	fixture.Daily.WeatherCode[2] = nil

	mockServer := serveJSON(t, nil, fixture)
	defer mockServer.Close()

	provider := NewOpenMeteoProviderAdapter(OpenMeteoProviderParams{
		BaseURL: mockServer.URL,
		Logger:  setupLoggerMock(t),
		Clock:   func() time.Time { return now },
	})

	data, err := provider.FetchWeather(context.Background(), montreal)
	require.NoError(t, err)

	require.Len(t, data.Hourly, 2)
	assert.Equal(t, "9AM", data.Hourly[0].Time)
	assert.Equal(t, 10, data.Hourly[0].Temp)
	assert.Equal(t, "12PM", data.Hourly[1].Time)
	assert.Equal(t, 13, data.Hourly[1].Temp)

	require.Len(t, data.Daily, 1)
	assert.Equal(t, "2024-06-04", data.Daily[0].Date)
	assert.Equal(t, 26, data.Daily[0].TempHigh)
}

func TestOpenMeteoProvider_FetchWeather_Errors(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		contains string
	}{
		{
			name: "ServiceUnavailable",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			contains: "status 503",
		},
		{
			name: "InvalidJSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"hourly": [`))
			},
			contains: "failed to decode Open-Meteo response",
		},
		{
			name: "UnequalArrays",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fixture := openMeteoFixture(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 5, 3)
				fixture.Hourly.WeatherCode = fixture.Hourly.WeatherCode[:4]
				_ = json.NewEncoder(w).Encode(fixture)
			},
			contains: "weathercode has 4 values for 5 timestamps",
		},
		{
			name: "EmptyObject",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			},
			contains: "Open-Meteo response is missing current_weather",
		},
		{
			name: "FeatureWithoutSections",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"type":"Feature"}`))
			},
			contains: "Open-Meteo response is missing current_weather",
		},
		{
			name: "NullCurrentTemperature",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"current_weather":{"temperature":null,"weathercode":3},"hourly":{"time":[]},"daily":{"time":[]}}`))
			},
			contains: "missing current_weather.temperature",
		},
		{
			name: "MissingHourly",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"current_weather":{"temperature":12,"weathercode":3},"daily":{"time":[]}}`))
			},
			contains: "missing hourly.time",
		},
		{
			name: "MissingDailyTime",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"current_weather":{"temperature":12,"weathercode":3},"hourly":{"time":[]},"daily":{}}`))
			},
			contains: "missing daily.time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockServer := httptest.NewServer(tt.handler)
			defer mockServer.Close()

			provider := NewOpenMeteoProviderAdapter(OpenMeteoProviderParams{
				BaseURL: mockServer.URL,
				Logger:  setupLoggerMock(t),
			})

			data, err := provider.FetchWeather(context.Background(), montreal)
			assert.Nil(t, data)
			assert.True(t, errors.IsProviderError(err))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestOpenMeteoProvider_GetProviderName(t *testing.T) {
	provider := NewOpenMeteoProviderAdapter(OpenMeteoProviderParams{Logger: setupLoggerMock(t)})
	assert.Equal(t, "Open-Meteo", provider.GetProviderName())
	assert.Equal(t, openMeteoDefaultBaseURL, provider.baseURL)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3, round(2.5))
	assert.Equal(t, -2, round(-2.5))
	assert.Equal(t, -3, round(-2.6))
	assert.Equal(t, 0, round(0.49))
	assert.Nil(t, roundPtr(nil))
}
