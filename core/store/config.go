package store

// Config holds configuration for the record store.
type Config struct {
	// Path is the location of the JSON file holding the adapter records.
	// The directory is created on first use if it does not exist.
	Path string `mapstructure:"path" default:"data/adapters.json"`
}
