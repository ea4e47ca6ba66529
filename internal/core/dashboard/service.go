package dashboard

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"meteorenard.app/internal/core/clothing"
	"meteorenard.app/internal/core/location"
	"meteorenard.app/internal/core/timeblock"
	"meteorenard.app/internal/core/weather"
	"meteorenard.app/internal/ports"
	"meteorenard.app/pkg/errors"
)

// Preferences is the part of the preference store the dashboard reads
type Preferences interface {
	CurrentLocation(ctx context.Context) location.Location
	ChildMode(ctx context.Context) bool
}

// Snapshot is one successful fetch. Snapshots are immutable once published.
type Snapshot struct {
	Data         *weather.WeatherData `json:"data"`
	Location     location.Location    `json:"location"`
	ProviderID   string               `json:"provider"`
	ProviderName string               `json:"providerName"`
	FetchedAt    time.Time            `json:"fetchedAt"`
}

// View is everything the presentation layer renders
type View struct {
	Snapshot    *Snapshot         `json:"snapshot,omitempty"`
	Blocks      []timeblock.Block `json:"blocks"`
	Description string            `json:"description,omitempty"`
	ChildMode   bool              `json:"childMode"`
	LastError   string            `json:"lastError,omitempty"`
	LastErrorAt *time.Time        `json:"lastErrorAt,omitempty"`
}

type failure struct {
	message string
	at      time.Time
}

// Service keeps the last successful forecast and refreshes it on demand.
// Concurrent refreshes are neither queued nor cancelled: whichever finishes
// last is published.
type Service struct {
	factory ports.WeatherProviderFactory
	prefs   Preferences
	logger  ports.Logger
	metrics ports.MetricsCollector
	now     func() time.Time

	mu         sync.RWMutex
	providerID string
	provider   ports.WeatherProvider

	snapshot atomic.Pointer[Snapshot]
	lastErr  atomic.Pointer[failure]
}

type ServiceDependencies struct {
	Factory    ports.WeatherProviderFactory
	Prefs      Preferences
	Logger     ports.Logger
	Metrics    ports.MetricsCollector
	ProviderID string
	Clock      func() time.Time
}

func NewService(deps ServiceDependencies) (*Service, error) {
	if deps.Factory == nil {
		return nil, errors.NewValidationError("provider factory is required")
	}
	if deps.Prefs == nil {
		return nil, errors.NewValidationError("preferences are required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics collector is required")
	}

	provider, err := deps.Factory.Create(deps.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("create provider %q: %w", deps.ProviderID, err)
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Service{
		factory:    deps.Factory,
		prefs:      deps.Prefs,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		now:        clock,
		providerID: deps.ProviderID,
		provider:   provider,
	}, nil
}

// ProviderID returns the active provider identifier
func (s *Service) ProviderID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.providerID
}

// SetProvider switches the active provider. The current snapshot is kept
// until the next refresh replaces it.
func (s *Service) SetProvider(providerID string) error {
	provider, err := s.factory.Create(providerID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.providerID = providerID
	s.provider = provider
	s.mu.Unlock()

	s.logger.Info("Weather provider changed", ports.F("provider", providerID))
	return nil
}

func (s *Service) activeProvider() (string, ports.WeatherProvider) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.providerID, s.provider
}

// Refresh fetches the forecast for the stored current location with the
// active provider. On failure the previous snapshot stays published.
func (s *Service) Refresh(ctx context.Context) (*Snapshot, error) {
	loc := s.prefs.CurrentLocation(ctx)
	providerID, provider := s.activeProvider()

	data, err := fetch(ctx, provider, loc)
	if err != nil {
		s.lastErr.Store(&failure{message: err.Error(), at: s.now()})
		s.metrics.RecordRefresh(ctx, false)
		s.logger.Error("Dashboard refresh failed",
			ports.F("provider", providerID),
			ports.F("location", loc.Name),
			ports.F("error", err))
		return nil, err
	}

	snap := &Snapshot{
		Data:         data,
		Location:     loc,
		ProviderID:   providerID,
		ProviderName: provider.GetProviderName(),
		FetchedAt:    s.now(),
	}
	s.snapshot.Store(snap)
	s.lastErr.Store(nil)
	s.metrics.RecordRefresh(ctx, true)

	s.logger.Debug("Dashboard refreshed",
		ports.F("provider", providerID),
		ports.F("location", loc.Name),
		ports.F("hourly", len(data.Hourly)),
		ports.F("daily", len(data.Daily)))
	return snap, nil
}

// Fetch retrieves a forecast without touching the published snapshot. An
// empty providerID selects the active provider.
func (s *Service) Fetch(ctx context.Context, providerID string, loc location.Location) (*weather.WeatherData, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	activeID, provider := s.activeProvider()
	if providerID != "" && providerID != activeID {
		p, err := s.factory.Create(providerID)
		if err != nil {
			return nil, err
		}
		provider = p
	}
	return fetch(ctx, provider, loc)
}

func fetch(ctx context.Context, provider ports.WeatherProvider, loc location.Location) (*weather.WeatherData, error) {
	data, err := provider.FetchWeather(ctx, loc)
	if err != nil {
		return nil, err
	}
	if err := data.Validate(); err != nil {
		return nil, errors.NewProviderError(
			fmt.Sprintf("%s returned invalid data", provider.GetProviderName()), err)
	}
	return data, nil
}

// Current returns the last published snapshot
func (s *Service) Current() (*Snapshot, bool) {
	snap := s.snapshot.Load()
	return snap, snap != nil
}

// View assembles the dashboard for the given local hour. Without any
// snapshot the blocks degrade to their defaults.
func (s *Service) View(ctx context.Context, hour int) View {
	childMode := s.prefs.ChildMode(ctx)
	view := View{ChildMode: childMode}

	var data *weather.WeatherData
	if snap, ok := s.Current(); ok {
		view.Snapshot = snap
		data = snap.Data
		view.Description = clothing.Describe(float64(data.Current.Temp))
	}
	view.Blocks = timeblock.GetBlocks(data, hour, childMode)

	if f := s.lastErr.Load(); f != nil {
		at := f.at
		view.LastError = f.message
		view.LastErrorAt = &at
	}
	return view
}

// ViewNow is View at the current hour in the zone of the last snapshot,
// or local time without one
func (s *Service) ViewNow(ctx context.Context) View {
	var data *weather.WeatherData
	if snap, ok := s.Current(); ok {
		data = snap.Data
	}
	return s.View(ctx, data.LocalHour(s.now()))
}
