package herald

import "time"

// Config holds the configuration for a Herald instance.
type Config struct {
	// Concurrency bounds the number of in-flight deliveries per dispatch.
	Concurrency int

	// RequestTimeout is the HTTP timeout per delivery attempt.
	RequestTimeout time.Duration

	// UserAgent is sent with every delivery.
	UserAgent string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Concurrency:    10,
		RequestTimeout: 30 * time.Second,
		UserAgent:      "Herald/1.0",
	}
}
