package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"meteorenard.app/internal/adapters/api"
	"meteorenard.app/internal/adapters/infrastructure"
	"meteorenard.app/internal/adapters/scheduler"
	"meteorenard.app/internal/config"
	"meteorenard.app/internal/core/dashboard"
	"meteorenard.app/internal/core/geolocation"
	"meteorenard.app/internal/core/preferences"
	"meteorenard.app/internal/ports"
)

// staleSnapshotAge is used for the dashboard health check when the
// background refresh is disabled
const staleSnapshotAge = time.Hour

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Use Cases
	preferences *preferences.Store
	locator     *geolocation.Locator
	dashboard   *dashboard.Service

	// Adapters
	httpServer *http.Server
	router     *gin.Engine
	scheduler  *scheduler.RefreshScheduler

	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(cfg, DependencyOptions{})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	return NewApplicationWithDependencies(cfg, deps)
}

// NewApplicationWithDependencies creates an application over an existing
// container, letting tests swap the registry or logger
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	locationConfig := a.ports.ConfigProvider.GetLocationConfig()

	prefs, err := preferences.NewStore(preferences.StoreDependencies{
		KV:              a.ports.Store,
		Logger:          a.ports.Logger,
		DefaultLocation: locationConfig.Default,
	})
	if err != nil {
		return fmt.Errorf("create preferences store: %w", err)
	}
	a.preferences = prefs

	locator, err := geolocation.NewLocator(geolocation.LocatorDependencies{
		ReverseGeocoder: a.ports.ReverseGeocoder,
		Logger:          a.ports.Logger,
		Timeout:         locationConfig.GeolocationTimeout,
	})
	if err != nil {
		return fmt.Errorf("create locator: %w", err)
	}
	a.locator = locator

	dash, err := dashboard.NewService(dashboard.ServiceDependencies{
		Factory:    a.ports.WeatherProviders,
		Prefs:      prefs,
		Logger:     a.ports.Logger,
		Metrics:    a.ports.Metrics,
		ProviderID: a.ports.ConfigProvider.GetWeatherConfig().Provider,
	})
	if err != nil {
		return fmt.Errorf("create dashboard service: %w", err)
	}
	a.dashboard = dash

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	schedulerConfig := a.ports.ConfigProvider.GetSchedulerConfig()
	maxAge := staleSnapshotAge
	if schedulerConfig.Enabled {
		maxAge = 2 * schedulerConfig.RefreshInterval
	}

	storeType := a.ports.ConfigProvider.GetStoreConfig().Type
	a.ports.Health = infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		StoreChecker:     infrastructure.NewStoreHealthChecker(a.deps.Store(), storeType),
		ProviderChecker:  infrastructure.NewWeatherProviderHealthChecker(a.ports.WeatherProviders, a.dashboard.ProviderID),
		DashboardChecker: infrastructure.NewDashboardHealthChecker(a.dashboard, maxAge, time.Now),
		ConfigProvider:   a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Dashboard:   a.dashboard,
		Preferences: a.preferences,
		Locator:     a.locator,
		Geocoder:    a.ports.Geocoder,
		Providers:   a.ports.WeatherProviders,
		Health:      a.ports.Health,
		Logger:      a.ports.Logger,

		MetricsHandler: a.deps.MetricsHandler(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}
	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.ports.ConfigProvider.GetServerConfig().Port),
		Handler:      httpAdapter.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if schedulerConfig.Enabled {
		refresher, err := scheduler.NewRefreshScheduler(scheduler.RefreshSchedulerParams{
			Dashboard: a.dashboard,
			Logger:    a.ports.Logger,
			Interval:  schedulerConfig.RefreshInterval,
		})
		if err != nil {
			return fmt.Errorf("create refresh scheduler: %w", err)
		}
		a.scheduler = refresher
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start runs the background refresh and serves HTTP until Shutdown.
// Without a scheduler the dashboard is loaded once before serving.
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	if a.scheduler != nil {
		if err := a.scheduler.Start(); err != nil {
			return fmt.Errorf("start refresh scheduler: %w", err)
		}
	} else if _, err := a.dashboard.Refresh(ctx); err != nil {
		slog.Warn("Initial dashboard refresh failed", "error", err)
	}

	slog.Info("Starting HTTP server", "addr", a.httpServer.Addr)
	if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if a.scheduler != nil {
		a.scheduler.Stop()
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error closing store", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// Dashboard returns the dashboard service for testing
func (a *Application) Dashboard() *dashboard.Service {
	return a.dashboard
}
