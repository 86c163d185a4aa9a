package atlas

// MaxSide is the largest atlas side length. Texel coordinates are stored
// as uint16 with an exclusive upper bound, so a side may not reach 65536.
const MaxSide = 16384

// Config holds atlas configuration.
type Config struct {
	// Width is the fixed width of the atlas in texels.
	// Default: 1024
	Width int

	// InitialHeight is the starting height in texels. The atlas doubles
	// its height when a new shelf does not fit.
	// Default: 64
	InitialHeight int

	// MaxHeight bounds growth.
	// Default: 8192
	MaxHeight int

	// Padding between regions to prevent bleeding when sampling.
	// Default: 1
	Padding int

	// AlphaFromCoverage converts rasterizer coverage into stored alpha.
	// Default: TwoCoverageMinusCoverageSq
	AlphaFromCoverage AlphaFromCoverage
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		Width:             1024,
		InitialHeight:     64,
		MaxHeight:         8192,
		Padding:           1,
		AlphaFromCoverage: TwoCoverageMinusCoverageSq,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Width < 64 {
		return &ConfigError{Field: "Width", Reason: "must be at least 64"}
	}
	if c.Width > MaxSide {
		return &ConfigError{Field: "Width", Reason: "must be at most 16384"}
	}
	if c.InitialHeight < 1 {
		return &ConfigError{Field: "InitialHeight", Reason: "must be positive"}
	}
	if c.MaxHeight < c.InitialHeight {
		return &ConfigError{Field: "MaxHeight", Reason: "must be at least InitialHeight"}
	}
	if c.MaxHeight > MaxSide {
		return &ConfigError{Field: "MaxHeight", Reason: "must be at most 16384"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	if c.Padding > 8 {
		return &ConfigError{Field: "Padding", Reason: "must be at most 8"}
	}
	if err := c.AlphaFromCoverage.validate(); err != nil {
		return err
	}
	return nil
}
