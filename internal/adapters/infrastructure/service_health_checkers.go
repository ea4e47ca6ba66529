package infrastructure

import (
	"context"
	"time"

	"meteorenard.app/internal/core/dashboard"
	"meteorenard.app/internal/ports"
)

const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// Pinger is satisfied by every store backend
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreHealthChecker implements preference store health checking
type StoreHealthChecker struct {
	store     Pinger
	storeType string
}

func NewStoreHealthChecker(store Pinger, storeType string) *StoreHealthChecker {
	return &StoreHealthChecker{store: store, storeType: storeType}
}

// Check verifies store connectivity
func (s *StoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "store",
		Details:   map[string]interface{}{"type": s.storeType},
	}

	if s.store == nil {
		status.Status = StatusUnhealthy
		status.Error = "store is not configured"
		return status
	}

	if err := s.store.Ping(ctx); err != nil {
		status.Status = StatusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = StatusHealthy
	status.Details["connected"] = true
	return status
}

// WeatherProviderHealthChecker reports whether the active provider can be
// built. It never calls the upstream API.
type WeatherProviderHealthChecker struct {
	factory ports.WeatherProviderFactory
	active  func() string
}

func NewWeatherProviderHealthChecker(factory ports.WeatherProviderFactory, active func() string) *WeatherProviderHealthChecker {
	return &WeatherProviderHealthChecker{factory: factory, active: active}
}

func (w *WeatherProviderHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherProvider",
		Details:   make(map[string]interface{}),
	}

	if w.factory == nil || w.active == nil {
		status.Status = StatusUnhealthy
		status.Error = "weather provider factory is not available"
		return status
	}

	id := w.active()
	status.Details["active"] = id
	status.Details["available"] = w.factory.AvailableProviders()

	provider, err := w.factory.Create(id)
	if err != nil {
		status.Status = StatusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = StatusHealthy
	status.Details["name"] = provider.GetProviderName()
	return status
}

// SnapshotSource exposes the last published forecast
type SnapshotSource interface {
	Current() (*dashboard.Snapshot, bool)
}

// DashboardHealthChecker reports forecast freshness. Data older than
// maxAge, or no data at all, is degraded rather than unhealthy.
type DashboardHealthChecker struct {
	source SnapshotSource
	maxAge time.Duration
	now    func() time.Time
}

func NewDashboardHealthChecker(source SnapshotSource, maxAge time.Duration, clock func() time.Time) *DashboardHealthChecker {
	if clock == nil {
		clock = time.Now
	}
	return &DashboardHealthChecker{source: source, maxAge: maxAge, now: clock}
}

func (d *DashboardHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "dashboard",
		Status:    StatusDegraded,
		Details:   make(map[string]interface{}),
	}

	snap, ok := d.source.Current()
	if !ok {
		status.Details["hasData"] = false
		return status
	}

	age := d.now().Sub(snap.FetchedAt)
	status.Details["hasData"] = true
	status.Details["provider"] = snap.ProviderID
	status.Details["location"] = snap.Location.Name
	status.Details["fetchedAt"] = snap.FetchedAt.Format(time.RFC3339)
	status.Details["ageSeconds"] = int64(age.Seconds())

	if d.maxAge <= 0 || age <= d.maxAge {
		status.Status = StatusHealthy
	}
	return status
}
