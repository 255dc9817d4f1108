package domain

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "taskdeck.toml"

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (project + global).
	Load() (*Config, error)
}

// Config represents the application configuration.
type Config struct {
	Store StoreConfig `toml:"store"` // [store] settings
	API   APIConfig   `toml:"api"`   // [api] settings
	Log   LogConfig   `toml:"log"`   // [log] settings
}

// StoreConfig selects and configures the Record Store backing.
type StoreConfig struct {
	Type string `toml:"type"` // Backing: memory, json, or api
	Path string `toml:"path"` // JSON store file path (json backing)
	Seed string `toml:"seed"` // YAML seed fixture (memory backing, optional)
}

// APIConfig holds HTTP settings for the serve command and the remote
// store backing.
type APIConfig struct {
	URL  string `toml:"url"`  // Base URL of a remote taskdeck API (api backing)
	Addr string `toml:"addr"` // Listen address for taskdeck serve
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// Store backing types.
const (
	StoreTypeMemory = "memory"
	StoreTypeJSON   = "json"
	StoreTypeAPI    = "api"
)

// NewDefaultConfig returns the configuration used when no config file
// exists: a JSON store in the data directory, info-level logging.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{Type: StoreTypeJSON},
		API:   APIConfig{URL: "http://localhost:8080", Addr: ":8080"},
		Log:   LogConfig{Level: "info"},
	}
}
