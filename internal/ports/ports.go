package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherProviders WeatherProviderFactory

	// Location
	Store           KeyValueStore
	Geocoder        Geocoder
	ReverseGeocoder ReverseGeocoder

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
	Health         SystemHealthChecker
}
