package config

import (
	"errors"
)

// Decoding parameters.
type Config struct {
	// Number of meta code groups above which the group indices of the
	// entropy image are compacted to the groups actually used. Unused groups
	// are still read from the bitstream but not kept. The threshold is also
	// applied when the image has fewer pixels than groups.
	GroupRemapThreshold int
	// Maximum number of pixels (width * height) of an image or sub-image.
	// Larger images are rejected before any buffer is allocated.
	MaxPixels int
}

// Should always be called, to initialize a fresh Config structure before
// modification.
func (config *Config) Init() error {
	if config == nil {
		return errors.New("config is nil")
	}

	config.GroupRemapThreshold = 1000
	config.MaxPixels = 1 << 28
	return config.Validate()
}

// Default returns an initialized Config.
func Default() *Config {
	config := &Config{}
	_ = config.Init()
	return config
}

// Returns nil if 'config' is non-nil and all configuration parameters are
// within their valid ranges.
func (config *Config) Validate() error {
	if config == nil {
		return errors.New("config is nil")
	}
	if config.GroupRemapThreshold < 1 {
		return errors.New("group_remap_threshold must be positive")
	}
	if config.MaxPixels < 1 {
		return errors.New("max_pixels must be positive")
	}
	return nil
}
