package jose

import (
	"fmt"
	"log/slog"

	"github.com/cybergodev/jose/internal/core"
)

// Config represents decoder configuration
type Config struct {
	// MaxTokenLength caps the accepted compact serialization size
	MaxTokenLength int

	// HeaderCache is the parsed-header cache the decoder uses. When nil the
	// decoder creates a private cache of its own.
	HeaderCache *HeaderCache

	// Logger receives decode trace events. When nil, tracing is discarded.
	Logger *slog.Logger

	// LocalIssuer overrides the issuer sentinel attributed to claims of
	// payloads that carry no issuer claim. Defaults to LocalIssuer.
	LocalIssuer string
}

// DefaultConfig returns the default decoder configuration
func DefaultConfig() Config {
	return Config{
		MaxTokenLength: core.MaxTokenLength,
		LocalIssuer:    LocalIssuer,
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c == nil {
		return ErrInvalidConfig
	}
	if c.MaxTokenLength < 0 {
		return fmt.Errorf("%w: MaxTokenLength must not be negative", ErrInvalidConfig)
	}
	return nil
}
