package dashboard

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"meteorenard.app/internal/core/location"
	"meteorenard.app/internal/core/timeblock"
	"meteorenard.app/internal/core/weather"
	"meteorenard.app/internal/mocks"
	"meteorenard.app/pkg/errors"
)

type stubPrefs struct {
	loc       location.Location
	childMode bool
}

func (p stubPrefs) CurrentLocation(context.Context) location.Location { return p.loc }
func (p stubPrefs) ChildMode(context.Context) bool                    { return p.childMode }

var (
	montreal  = location.Location{Name: "Montréal", Latitude: 45.5017, Longitude: -73.5673}
	fixedTime = time.Date(2024, 6, 1, 9, 15, 0, 0, time.UTC)
)

func allowLogs(l *mocks.Logger) {
	for n := 0; n <= 5; n++ {
		args := make([]interface{}, n)
		for i := range args {
			args[i] = mock.Anything
		}
		l.EXPECT().Debug(mock.Anything, args...).Maybe()
		l.EXPECT().Info(mock.Anything, args...).Maybe()
		l.EXPECT().Error(mock.Anything, args...).Maybe()
	}
}

func sampleData(temp int) *weather.WeatherData {
	return &weather.WeatherData{
		Current: weather.CurrentWeather{Location: "Montréal", Temp: temp, Condition: weather.Clear, Description: "Clear sky"},
		Hourly: []weather.HourlyWeather{
			{Time: "9AM", Temp: temp, Condition: weather.Clear},
			{Time: "10AM", Temp: temp + 2, Condition: weather.Clear},
		},
	}
}

type fixture struct {
	svc      *Service
	factory  *mocks.WeatherProviderFactory
	provider *mocks.WeatherProvider
	metrics  *mocks.MetricsCollector
}

func setup(t *testing.T, prefs stubPrefs) fixture {
	factory := mocks.NewWeatherProviderFactory(t)
	provider := mocks.NewWeatherProvider(t)
	metrics := mocks.NewMetricsCollector(t)
	logger := mocks.NewLogger(t)
	allowLogs(logger)

	factory.EXPECT().Create("open-meteo").Return(provider, nil).Once()
	provider.EXPECT().GetProviderName().Return("Open-Meteo").Maybe()

	svc, err := NewService(ServiceDependencies{
		Factory:    factory,
		Prefs:      prefs,
		Logger:     logger,
		Metrics:    metrics,
		ProviderID: "open-meteo",
		Clock:      func() time.Time { return fixedTime },
	})
	require.NoError(t, err)
	return fixture{svc: svc, factory: factory, provider: provider, metrics: metrics}
}

func TestNewService_Validation(t *testing.T) {
	_, err := NewService(ServiceDependencies{})
	assert.True(t, errors.IsValidationError(err))

	factory := mocks.NewWeatherProviderFactory(t)
	factory.EXPECT().Create("nope").Return(nil, errors.NewConfigurationError("unknown weather provider \"nope\"", nil))
	_, err = NewService(ServiceDependencies{
		Factory:    factory,
		Prefs:      stubPrefs{loc: montreal},
		Logger:     mocks.NewLogger(t),
		Metrics:    mocks.NewMetricsCollector(t),
		ProviderID: "nope",
	})
	assert.True(t, errors.IsConfigurationError(err))
}

func TestService_Refresh_PublishesSnapshot(t *testing.T) {
	f := setup(t, stubPrefs{loc: montreal})
	data := sampleData(12)

	f.provider.EXPECT().FetchWeather(mock.Anything, montreal).Return(data, nil)
	f.metrics.EXPECT().RecordRefresh(mock.Anything, true)

	snap, err := f.svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, data, snap.Data)
	assert.Equal(t, "open-meteo", snap.ProviderID)
	assert.Equal(t, "Open-Meteo", snap.ProviderName)
	assert.Equal(t, fixedTime, snap.FetchedAt)

	current, ok := f.svc.Current()
	require.True(t, ok)
	assert.Same(t, snap, current)
}

func TestService_Refresh_FailureKeepsLastKnownData(t *testing.T) {
	f := setup(t, stubPrefs{loc: montreal})
	data := sampleData(12)

	f.provider.EXPECT().FetchWeather(mock.Anything, montreal).Return(data, nil).Once()
	f.metrics.EXPECT().RecordRefresh(mock.Anything, true).Once()
	_, err := f.svc.Refresh(context.Background())
	require.NoError(t, err)

	f.provider.EXPECT().FetchWeather(mock.Anything, montreal).
		Return(nil, errors.NewProviderError("Open-Meteo API error: status 503", nil)).Once()
	f.metrics.EXPECT().RecordRefresh(mock.Anything, false).Once()
	_, err = f.svc.Refresh(context.Background())
	assert.True(t, errors.IsProviderError(err))

	current, ok := f.svc.Current()
	require.True(t, ok)
	assert.Equal(t, data, current.Data)

	view := f.svc.View(context.Background(), 9)
	assert.Contains(t, view.LastError, "503")
	require.NotNil(t, view.LastErrorAt)
	assert.Equal(t, fixedTime, *view.LastErrorAt)
}

func TestService_Refresh_RejectsInvalidProviderOutput(t *testing.T) {
	f := setup(t, stubPrefs{loc: montreal})
	bad := sampleData(12)
	bad.Hourly[0].Condition = "hail"

	f.provider.EXPECT().FetchWeather(mock.Anything, montreal).Return(bad, nil)
	f.metrics.EXPECT().RecordRefresh(mock.Anything, false)

	_, err := f.svc.Refresh(context.Background())
	assert.True(t, errors.IsProviderError(err))
	_, ok := f.svc.Current()
	assert.False(t, ok)
}

func TestService_Refresh_LastWriteWins(t *testing.T) {
	f := setup(t, stubPrefs{loc: montreal})
	slow, fast := sampleData(1), sampleData(2)

	started, release := make(chan struct{}), make(chan struct{})
	f.provider.EXPECT().FetchWeather(mock.Anything, montreal).
		RunAndReturn(func(context.Context, location.Location) (*weather.WeatherData, error) {
			close(started)
			<-release
			return slow, nil
		}).Once()
	f.provider.EXPECT().FetchWeather(mock.Anything, montreal).Return(fast, nil).Once()
	f.metrics.EXPECT().RecordRefresh(mock.Anything, true).Times(2)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = f.svc.Refresh(context.Background())
	}()

	<-started

	_, err := f.svc.Refresh(context.Background())
	require.NoError(t, err)
	close(release)
	wg.Wait()

	current, _ := f.svc.Current()
	assert.Equal(t, slow, current.Data)
}

func TestService_SetProvider(t *testing.T) {
	f := setup(t, stubPrefs{loc: montreal})
	msc := mocks.NewWeatherProvider(t)
	msc.EXPECT().GetProviderName().Return("Environnement Canada").Maybe()

	f.factory.EXPECT().Create("msc-geomet").Return(msc, nil)
	require.NoError(t, f.svc.SetProvider("msc-geomet"))
	assert.Equal(t, "msc-geomet", f.svc.ProviderID())

	msc.EXPECT().FetchWeather(mock.Anything, montreal).Return(sampleData(3), nil)
	f.metrics.EXPECT().RecordRefresh(mock.Anything, true)
	snap, err := f.svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Environnement Canada", snap.ProviderName)

	f.factory.EXPECT().Create("bogus").Return(nil, errors.NewConfigurationError("unknown weather provider", nil))
	assert.True(t, errors.IsConfigurationError(f.svc.SetProvider("bogus")))
	assert.Equal(t, "msc-geomet", f.svc.ProviderID())
}

func TestService_Fetch(t *testing.T) {
	f := setup(t, stubPrefs{loc: montreal})
	laval := location.Location{Name: "Laval", Latitude: 45.6066, Longitude: -73.7124}

	f.provider.EXPECT().FetchWeather(mock.Anything, laval).Return(sampleData(8), nil)
	data, err := f.svc.Fetch(context.Background(), "", laval)
	require.NoError(t, err)
	assert.Equal(t, 8, data.Current.Temp)

	_, ok := f.svc.Current()
	assert.False(t, ok, "ad-hoc fetch must not publish")

	_, err = f.svc.Fetch(context.Background(), "", location.Location{Name: "Bad", Latitude: 300})
	assert.True(t, errors.IsValidationError(err))
}

func TestService_View(t *testing.T) {
	t.Run("NoData", func(t *testing.T) {
		f := setup(t, stubPrefs{loc: montreal})
		view := f.svc.View(context.Background(), 23)
		assert.Nil(t, view.Snapshot)
		require.Len(t, view.Blocks, 3)
		assert.Equal(t, timeblock.DefaultTemperature, view.Blocks[0].Temperature)
		assert.True(t, view.Blocks[0].IsNextDay)
		assert.Empty(t, view.Description)
	})

	t.Run("WithData", func(t *testing.T) {
		f := setup(t, stubPrefs{loc: montreal, childMode: true})
		f.provider.EXPECT().FetchWeather(mock.Anything, montreal).Return(sampleData(20), nil)
		f.metrics.EXPECT().RecordRefresh(mock.Anything, true)
		_, err := f.svc.Refresh(context.Background())
		require.NoError(t, err)

		view := f.svc.ViewNow(context.Background())
		assert.True(t, view.ChildMode)
		assert.Equal(t, "Doux", view.Description)
		assert.Equal(t, timeblock.Morning, view.Blocks[0].Period)
		assert.Equal(t, 21.0, view.Blocks[0].Temperature)
		assert.Empty(t, view.LastError)
	})
}

func TestService_ViewNow_UsesForecastZone(t *testing.T) {
	f := setup(t, stubPrefs{loc: montreal})
	data := sampleData(20)
	// 09:15 UTC is 13:15 at UTC+4
	data.Zone = time.FixedZone("", 4*3600)
	f.provider.EXPECT().FetchWeather(mock.Anything, montreal).Return(data, nil)
	f.metrics.EXPECT().RecordRefresh(mock.Anything, true)
	_, err := f.svc.Refresh(context.Background())
	require.NoError(t, err)

	view := f.svc.ViewNow(context.Background())
	assert.Equal(t, timeblock.Afternoon, view.Blocks[0].Period)
	assert.False(t, view.Blocks[0].IsNextDay)

	// an explicit hour is taken as is
	assert.Equal(t, timeblock.Morning, f.svc.View(context.Background(), 9).Blocks[0].Period)
}

func TestService_FetchOtherProvider(t *testing.T) {
	f := setup(t, stubPrefs{loc: montreal})
	other := mocks.NewWeatherProvider(t)
	f.factory.EXPECT().Create("msc-geomet").Return(other, nil)
	other.EXPECT().FetchWeather(mock.Anything, montreal).Return(nil, fmt.Errorf("boom"))

	_, err := f.svc.Fetch(context.Background(), "msc-geomet", montreal)
	assert.EqualError(t, err, "boom")
	assert.Equal(t, "open-meteo", f.svc.ProviderID())
}
