package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// PublicURL is the externally reachable base URL of this service.
	// It is embedded in the canonical webhook URL of every adapter.
	PublicURL string `mapstructure:"public_url" default:"http://localhost:8080"`
	// BodyLimitMB caps the size of inbound trigger payloads in megabytes.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"10"`
}

// BaseURL returns the public URL without a trailing slash.
func (c Config) BaseURL() string {
	return strings.TrimRight(c.PublicURL, "/")
}
