package config

// Config represents the full hook configuration.
type Config struct {
	Constraints   ConstraintsConfig   `yaml:"constraints"`
	Store         StoreConfig         `yaml:"store"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ConstraintsConfig locates the externally-owned design-system file.
type ConstraintsConfig struct {
	// Path overrides the well-known <tmp>/maestro-inspector/design-system.json
	// location. Empty means use the well-known path.
	Path string `yaml:"path"`
}

// StoreConfig configures the optional injection audit store.
// Disabled by default: the hook's baseline behavior persists nothing.
type StoreConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// ObservabilityConfig configures diagnostics.
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the structured logger. Disabled by default so the
// hook emits nothing but the context block.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`  // debug, info, warning
	Format  string `yaml:"format"` // json, human
}
