package dispatch

// Config holds configuration for outbound webhook delivery.
type Config struct {
	// TimeoutSeconds bounds each delivery (connect plus response).
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// MaxConcurrent caps concurrent deliveries within one trigger.
	// Zero means one goroutine per target.
	MaxConcurrent int `mapstructure:"max_concurrent" default:"0"`
}
