// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"meteorenard.app/internal/core/dashboard"
	"meteorenard.app/internal/core/location"
	"meteorenard.app/internal/core/preferences"
	"meteorenard.app/internal/core/weather"
	"meteorenard.app/internal/ports"
	"meteorenard.app/pkg/errors"
)

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router         *gin.Engine
	dashboard      DashboardUseCase
	preferences    PreferencesUseCase
	locator        LocatorUseCase
	geocoder       ports.Geocoder
	providers      ports.WeatherProviderFactory
	health         ports.SystemHealthChecker
	logger         ports.Logger
	metricsHandler http.Handler
}

// Use case interfaces that the HTTP adapter depends on
type DashboardUseCase interface {
	ProviderID() string
	SetProvider(providerID string) error
	Refresh(ctx context.Context) (*dashboard.Snapshot, error)
	Fetch(ctx context.Context, providerID string, loc location.Location) (*weather.WeatherData, error)
	Current() (*dashboard.Snapshot, bool)
	View(ctx context.Context, hour int) dashboard.View
	ViewNow(ctx context.Context) dashboard.View
}

type PreferencesUseCase interface {
	CurrentLocation(ctx context.Context) location.Location
	SetCurrentLocation(ctx context.Context, loc location.Location) error
	SavedLocations(ctx context.Context) []location.Location
	AddLocation(ctx context.Context, loc location.Location) ([]location.Location, error)
	RemoveLocation(ctx context.Context, name string) ([]location.Location, error)
	ChildMode(ctx context.Context) bool
	SetChildMode(ctx context.Context, enabled bool) error
	SetPermissionRequested(ctx context.Context) error
	Preferences(ctx context.Context) preferences.Preferences
}

type LocatorUseCase interface {
	Locate(ctx context.Context, source ports.PositionSource) (location.Location, error)
}

// ServerOptions represents options for creating the HTTP server.
// MetricsHandler defaults to the prometheus default registry.
type ServerOptions struct {
	Dashboard      DashboardUseCase
	Preferences    PreferencesUseCase
	Locator        LocatorUseCase
	Geocoder       ports.Geocoder
	Providers      ports.WeatherProviderFactory
	Health         ports.SystemHealthChecker
	Logger         ports.Logger
	MetricsHandler http.Handler
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	metricsHandler := opts.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	if err := RegisterValidators(opts.Providers.AvailableProviders()); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(opts.Logger))

	server := &HTTPServerAdapter{
		router:         router,
		dashboard:      opts.Dashboard,
		preferences:    opts.Preferences,
		locator:        opts.Locator,
		geocoder:       opts.Geocoder,
		providers:      opts.Providers,
		health:         opts.Health,
		logger:         opts.Logger,
		metricsHandler: metricsHandler,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Dashboard == nil {
		return errors.NewValidationError("dashboard use case is required")
	}
	if opts.Preferences == nil {
		return errors.NewValidationError("preferences use case is required")
	}
	if opts.Locator == nil {
		return errors.NewValidationError("locator use case is required")
	}
	if opts.Geocoder == nil {
		return errors.NewValidationError("geocoder is required")
	}
	if opts.Providers == nil {
		return errors.NewValidationError("provider factory is required")
	}
	if opts.Health == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.GET("/dashboard", s.getDashboard)
		api.POST("/dashboard/refresh", s.refreshDashboard)
		api.GET("/provider", s.getProvider)
		api.PUT("/provider", s.setProvider)
		api.GET("/timeblocks", s.getTimeBlocks)
		api.GET("/clothing", s.getClothing)

		locations := api.Group("/locations")
		locations.GET("", s.listLocations)
		locations.POST("", s.addLocation)
		locations.DELETE("/:name", s.removeLocation)
		locations.GET("/current", s.getCurrentLocation)
		locations.PUT("/current", s.setCurrentLocation)
		locations.GET("/popular", s.popularLocations)
		locations.GET("/search", s.searchLocations)
		locations.POST("/geolocate", s.geolocate)

		api.GET("/preferences", s.getPreferences)
		api.PUT("/preferences", s.updatePreferences)
		api.GET("/health", s.getHealth)
	}

	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
	s.router.GET("/chart/hourly", s.hourlyChart)
}

// Handler returns the router as a plain http.Handler
func (s *HTTPServerAdapter) Handler() http.Handler {
	return s.router
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
