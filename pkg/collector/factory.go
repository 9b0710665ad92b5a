package collector

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateConfigCollector(configDir string) Collector
	CreateLogsCollector(logDir string) Collector
	CreateCoredumpCollector(enabled bool) Collector
	CreateInventoryCollector() Collector
	CreateServicesCollector(services []string) Collector
}

// DefaultCrashDir is where the object-storage gateway leaves crash dumps.
const DefaultCrashDir = "/var/lib/ceph/crash"

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	// Component is the subsystem the collectors target, e.g. "rgw".
	Component string

	// CrashDir overrides the crash-dump source. Empty means DefaultCrashDir.
	CrashDir string

	// Runner overrides the package-query runner. Nil means ShellRunner.
	Runner CommandRunner
}

// NewDefaultFactory creates a factory with default settings for the
// given component.
func NewDefaultFactory(component string) *DefaultFactory {
	return &DefaultFactory{
		Component: component,
		CrashDir:  DefaultCrashDir,
	}
}

// CreateConfigCollector creates the component configuration collector.
func (f *DefaultFactory) CreateConfigCollector(configDir string) Collector {
	return &ConfigCollector{
		ConfigDir: configDir,
		Component: f.Component,
	}
}

// CreateLogsCollector creates the component log collector.
func (f *DefaultFactory) CreateLogsCollector(logDir string) Collector {
	return &LogsCollector{
		LogDir:    logDir,
		Component: f.Component,
	}
}

// CreateCoredumpCollector creates the crash-dump collector.
func (f *DefaultFactory) CreateCoredumpCollector(enabled bool) Collector {
	crashDir := f.CrashDir
	if crashDir == "" {
		crashDir = DefaultCrashDir
	}
	return &CoredumpCollector{
		CrashDir: crashDir,
		Enabled:  enabled,
	}
}

// CreateInventoryCollector creates the package inventory collector.
func (f *DefaultFactory) CreateInventoryCollector() Collector {
	return &InventoryCollector{
		Runner: f.Runner,
	}
}

// CreateServicesCollector creates the systemd service state collector.
func (f *DefaultFactory) CreateServicesCollector(services []string) Collector {
	return &ServicesCollector{
		Services: services,
	}
}
