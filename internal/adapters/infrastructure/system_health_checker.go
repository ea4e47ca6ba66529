package infrastructure

import (
	"context"

	"meteorenard.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers       map[string]ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	StoreChecker     ports.HealthChecker
	ProviderChecker  ports.HealthChecker
	DashboardChecker ports.HealthChecker
	ConfigProvider   ports.ConfigProvider
}

func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker)
	if config.StoreChecker != nil {
		checkers["store"] = config.StoreChecker
	}
	if config.ProviderChecker != nil {
		checkers["weatherProvider"] = config.ProviderChecker
	}
	if config.DashboardChecker != nil {
		checkers["dashboard"] = config.DashboardChecker
	}

	return &SystemHealthChecker{
		checkers:       checkers,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)

	for name, checker := range s.checkers {
		results[name] = checker.Check(ctx)
	}

	if s.configProvider != nil {
		weatherConfig := s.configProvider.GetWeatherConfig()
		locationConfig := s.configProvider.GetLocationConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    StatusHealthy,
			Details: map[string]interface{}{
				"defaultProvider": weatherConfig.Provider,
				"defaultLocation": locationConfig.Default.Name,
				"storeType":       s.configProvider.GetStoreConfig().Type,
			},
		}
	}

	return results
}

// Overall folds component statuses: any unhealthy wins, then degraded
func Overall(results map[string]ports.HealthStatus) string {
	overall := StatusHealthy
	for _, status := range results {
		switch status.Status {
		case StatusUnhealthy:
			return StatusUnhealthy
		case StatusDegraded:
			overall = StatusDegraded
		}
	}
	return overall
}
