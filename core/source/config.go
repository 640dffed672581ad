package source

// Config holds configuration for the fragment source.
type Config struct {
	// Driver selects the backend (http, storage, database, dir).
	Driver string `mapstructure:"driver" default:"http"`
	// BaseURL is prepended to relative references by the http backend.
	BaseURL string `mapstructure:"base_url" default:"http://localhost:8000"`
	// Prefix is prepended to object names by the storage backend.
	Prefix string `mapstructure:"prefix" default:""`
	// Dir is the root directory of the dir backend.
	Dir string `mapstructure:"dir" default:"."`
	// TimeoutSeconds bounds a single http retrieval.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	DriverHTTP     = "http"
	DriverStorage  = "storage"
	DriverDatabase = "database"
	DriverDir      = "dir"
)
