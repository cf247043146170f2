package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherFetcher WeatherFetcher
	SnapshotCache  SnapshotCache

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        LookupMetrics
}
