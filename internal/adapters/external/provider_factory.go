package external

import (
	"fmt"
	"time"

	"meteorenard.app/internal/ports"
	"meteorenard.app/pkg/errors"
)

// ProviderID identifies a weather provider
type ProviderID string

const (
	OpenMeteo ProviderID = "open-meteo"
	MSCGeoMet ProviderID = "msc-geomet"
)

// AllProviderIDs returns the known providers in display order
func AllProviderIDs() []ProviderID {
	return []ProviderID{OpenMeteo, MSCGeoMet}
}

// ParseProviderID validates a provider identifier
func ParseProviderID(s string) (ProviderID, error) {
	for _, id := range AllProviderIDs() {
		if string(id) == s {
			return id, nil
		}
	}
	return "", errors.NewConfigurationError(fmt.Sprintf("unknown weather provider %q", s), nil)
}

// ProviderFactory builds weather providers from configuration. It holds no
// state besides its configuration; every Create returns a new adapter.
type ProviderFactory struct {
	config  ports.WeatherConfig
	logger  ports.Logger
	metrics ports.MetricsCollector
	clock   func() time.Time
}

// ProviderFactoryParams holds parameters for creating the provider factory.
// Metrics is optional.
type ProviderFactoryParams struct {
	Config  ports.WeatherConfig
	Logger  ports.Logger
	Metrics ports.MetricsCollector
	Clock   func() time.Time
}

// NewProviderFactory creates a new provider factory
func NewProviderFactory(params ProviderFactoryParams) (*ProviderFactory, error) {
	if params.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	return &ProviderFactory{
		config:  params.Config,
		logger:  params.Logger,
		metrics: params.Metrics,
		clock:   params.Clock,
	}, nil
}

// Create returns the provider for providerID, decorated as configured
func (f *ProviderFactory) Create(providerID string) (ports.WeatherProvider, error) {
	id, err := ParseProviderID(providerID)
	if err != nil {
		return nil, err
	}

	var provider ports.WeatherProvider
	switch id {
	case OpenMeteo:
		provider = NewOpenMeteoProviderAdapter(OpenMeteoProviderParams{
			BaseURL: f.config.OpenMeteoBaseURL,
			Timeout: f.config.HTTPTimeout,
			Logger:  f.logger,
			Clock:   f.clock,
		})
	case MSCGeoMet:
		provider = NewMSCGeoMetProviderAdapter(MSCGeoMetProviderParams{
			BaseURL: f.config.MSCGeoMetBaseURL,
			Timeout: f.config.HTTPTimeout,
			Logger:  f.logger,
			Clock:   f.clock,
		})
	}

	if f.metrics != nil {
		provider = NewWeatherProviderMetricsDecorator(provider, f.metrics)
	}
	if f.config.EnableLogging {
		provider = NewWeatherProviderLoggingDecorator(provider, f.logger)
	}
	return provider, nil
}

// AvailableProviders returns the identifiers Create accepts
func (f *ProviderFactory) AvailableProviders() []string {
	ids := AllProviderIDs()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
