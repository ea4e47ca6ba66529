package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"meteorenard.app/internal/adapters/external"
	"meteorenard.app/internal/adapters/infrastructure"
	"meteorenard.app/internal/adapters/storage"
	"meteorenard.app/internal/config"
	"meteorenard.app/internal/ports"
	"meteorenard.app/pkg/logger"
)

// DependencyContainer builds and owns the adapters behind every port
type DependencyContainer struct {
	config     *config.Config
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer
	store      storage.Store
	ports      *ports.ApplicationPorts
}

// DependencyOptions overrides parts of the default wiring. A nil Registry
// means the process-wide prometheus registry. Logger, when set, replaces
// the stdout JSON logger.
type DependencyOptions struct {
	Registry *prometheus.Registry
	Logger   ports.Logger
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	container := &DependencyContainer{
		config:     cfg,
		registerer: prometheus.DefaultRegisterer,
		gatherer:   prometheus.DefaultGatherer,
	}
	if opts.Registry != nil {
		container.registerer = opts.Registry
		container.gatherer = opts.Registry
	}

	if err := container.initializePorts(opts.Logger); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts(base ports.Logger) error {
	slog.Info("Initializing ports...")

	log, err := c.buildLogger(base)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)
	metrics := infrastructure.NewPrometheusMetrics(c.registerer)

	storeConfig := configProvider.GetStoreConfig()
	store, err := storage.NewStore(&storeConfig)
	if err != nil {
		return fmt.Errorf("create %s store: %w", storeConfig.Type, err)
	}
	c.store = store

	providers, err := external.NewProviderFactory(external.ProviderFactoryParams{
		Config:  configProvider.GetWeatherConfig(),
		Logger:  log,
		Metrics: metrics,
	})
	if err != nil {
		return fmt.Errorf("create provider factory: %w", err)
	}

	geocoding := configProvider.GetGeocodingConfig()
	geocoder := external.NewOpenMeteoGeocoder(external.OpenMeteoGeocoderParams{
		BaseURL: geocoding.SearchBaseURL,
		Timeout: geocoding.HTTPTimeout,
		Logger:  log,
		Metrics: metrics,
	})
	reverseGeocoder := external.NewNominatimReverseGeocoder(external.NominatimReverseGeocoderParams{
		BaseURL:   geocoding.ReverseBaseURL,
		UserAgent: geocoding.UserAgent,
		Timeout:   geocoding.HTTPTimeout,
		Throttle:  external.NewThrottle(external.ThrottleParams{MinInterval: geocoding.MinInterval}),
		Logger:    log,
		Metrics:   metrics,
	})

	c.ports = &ports.ApplicationPorts{
		WeatherProviders: providers,
		Store:            storage.NewInstrumentedStore(store, metrics),
		Geocoder:         geocoder,
		ReverseGeocoder:  reverseGeocoder,
		ConfigProvider:   configProvider,
		Logger:           log,
		Metrics:          metrics,
	}

	slog.Info("Ports initialized successfully", "store", storeConfig.Type)
	return nil
}

// buildLogger returns the JSON stdout logger, fanned out to a file when
// LOG_FILE_PATH is set
func (c *DependencyContainer) buildLogger(base ports.Logger) (ports.Logger, error) {
	if base == nil {
		base = infrastructure.NewSlogLoggerAdapter(logger.NewWithLevel(logger.ParseLevel(c.config.Log.Level)).Logger)
	}
	if c.config.Log.FilePath == "" {
		return base, nil
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(infrastructure.FileLoggerParams{
		Path:     c.config.Log.FilePath,
		MinLevel: strings.ToUpper(strings.TrimSpace(c.config.Log.Level)),
	})
	if err != nil {
		return nil, err
	}
	return infrastructure.MultiLogger{base, fileLogger}, nil
}

// ApplicationPorts returns the assembled ports. Health is filled in by the
// application once the dashboard exists.
func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// MetricsHandler serves the registry the collectors were registered with
func (c *DependencyContainer) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// Store returns the raw backend, used for health pings and shutdown
func (c *DependencyContainer) Store() storage.Store {
	return c.store
}

// Cleanup releases the store connection
func (c *DependencyContainer) Cleanup() error {
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}
