package atlas

import "errors"

// Sentinel errors for atlas package.
var (
	// ErrAtlasFull is returned when a region cannot be packed without
	// growing the atlas beyond Config.MaxHeight.
	ErrAtlasFull = errors.New("atlas: no space left")

	// ErrInvalidRegion is returned for zero or negative allocation sizes.
	ErrInvalidRegion = errors.New("atlas: region size must be positive")

	// ErrNilCreator is returned when Upload is called without a texture creator.
	ErrNilCreator = errors.New("atlas: nil texture creator")
)

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}
