package external

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"meteorenard.app/internal/core/location"
	"meteorenard.app/internal/core/weather"
	"meteorenard.app/internal/mocks"
	"meteorenard.app/internal/ports"
)

func sampleWeather() *weather.WeatherData {
	return &weather.WeatherData{
		Current: weather.CurrentWeather{Location: "TestCity", Temp: 22, Condition: weather.Clear, Description: "Test weather"},
		Hourly:  []weather.HourlyWeather{{Time: "9AM", Temp: 21, Condition: weather.Clear}},
	}
}

// Simple test using concrete implementations instead of mocks
func TestWeatherProviderLoggingDecorator_BasicFunctionality(t *testing.T) {
	testProvider := &testWeatherProvider{name: "test-provider", response: sampleWeather()}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)

	result, err := decorator.FetchWeather(context.Background(), location.Location{Name: "TestCity"})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 22, result.Current.Temp)

	assert.Equal(t, 2, len(testLogger.entries))

	requestLog := testLogger.entries[0]
	assert.Equal(t, "INFO", requestLog.level)
	assert.Equal(t, "Weather API request started", requestLog.message)
	assert.Equal(t, "test-provider", requestLog.fields["provider"])
	assert.Equal(t, "TestCity", requestLog.fields["location"])
	assert.Equal(t, "request", requestLog.fields["event"])

	responseLog := testLogger.entries[1]
	assert.Equal(t, "INFO", responseLog.level)
	assert.Equal(t, "Weather API request completed", responseLog.message)
	assert.Equal(t, "response", responseLog.fields["event"])
	assert.Equal(t, 22, responseLog.fields["temperature"])
	assert.Equal(t, "clear", responseLog.fields["condition"])
	assert.Equal(t, 1, responseLog.fields["hourly"])
	assert.Contains(t, responseLog.fields, "duration_ms")

	assert.Equal(t, "test-provider", decorator.GetProviderName())
}

func TestWeatherProviderLoggingDecorator_ErrorHandling(t *testing.T) {
	testProvider := &testWeatherProvider{name: "error-provider", err: errors.New("API rate limit exceeded")}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)

	result, err := decorator.FetchWeather(context.Background(), location.Location{Name: "InvalidCity"})

	assert.Error(t, err)
	assert.Equal(t, "API rate limit exceeded", err.Error())
	assert.Nil(t, result)

	assert.Equal(t, 2, len(testLogger.entries))

	errorLog := testLogger.entries[1]
	assert.Equal(t, "ERROR", errorLog.level)
	assert.Equal(t, "Weather API request failed", errorLog.message)
	assert.Equal(t, "error-provider", errorLog.fields["provider"])
	assert.Equal(t, "InvalidCity", errorLog.fields["location"])
	assert.Equal(t, "error", errorLog.fields["event"])
	assert.Equal(t, "API rate limit exceeded", errorLog.fields["error"])
	assert.Contains(t, errorLog.fields, "duration_ms")
}

func TestWeatherProviderLoggingDecorator_DurationTracking(t *testing.T) {
	testProvider := &testWeatherProvider{name: "slow-provider", response: sampleWeather(), delay: 10 * time.Millisecond}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)

	_, err := decorator.FetchWeather(context.Background(), location.Location{Name: "SlowCity"})
	assert.NoError(t, err)

	duration, ok := testLogger.entries[1].fields["duration_ms"].(int64)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, duration, int64(10))
}

func TestWeatherProviderMetricsDecorator(t *testing.T) {
	metrics := mocks.NewMetricsCollector(t)

	ok := NewWeatherProviderMetricsDecorator(&testWeatherProvider{name: "Open-Meteo", response: sampleWeather()}, metrics)
	metrics.EXPECT().RecordProviderCall(mock.Anything, "Open-Meteo", true, mock.AnythingOfType("time.Duration")).Once()
	_, err := ok.FetchWeather(context.Background(), montreal)
	assert.NoError(t, err)

	failing := NewWeatherProviderMetricsDecorator(&testWeatherProvider{name: "Environnement Canada", err: errors.New("boom")}, metrics)
	metrics.EXPECT().RecordProviderCall(mock.Anything, "Environnement Canada", false, mock.AnythingOfType("time.Duration")).Once()
	_, err = failing.FetchWeather(context.Background(), montreal)
	assert.Error(t, err)
	assert.Equal(t, "Environnement Canada", failing.GetProviderName())
}

// Test helper structs
type testWeatherProvider struct {
	name     string
	response *weather.WeatherData
	err      error
	delay    time.Duration
}

func (p *testWeatherProvider) FetchWeather(ctx context.Context, _ location.Location) (*weather.WeatherData, error) {
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.response, nil
}

func (p *testWeatherProvider) GetProviderName() string {
	return p.name
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	entries []logEntry
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) {
	l.addEntry("DEBUG", msg, fields...)
}

func (l *testLogger) Info(msg string, fields ...ports.Field) {
	l.addEntry("INFO", msg, fields...)
}

func (l *testLogger) Warn(msg string, fields ...ports.Field) {
	l.addEntry("WARN", msg, fields...)
}

func (l *testLogger) Error(msg string, fields ...ports.Field) {
	l.addEntry("ERROR", msg, fields...)
}

func (l *testLogger) addEntry(level, message string, fields ...ports.Field) {
	fieldMap := make(map[string]interface{})
	for _, field := range fields {
		fieldMap[field.Key] = field.Value
	}

	l.entries = append(l.entries, logEntry{
		level:   level,
		message: message,
		fields:  fieldMap,
	})
}
