package audio

import (
	"errors"
	"fmt"
)

// Config controls effect synthesis and playback
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
	// Per-effect gain, multiplied with MasterVolume
	EffectVolumes [soundTypeCount]float64
}

// DefaultConfig returns audible defaults
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: [soundTypeCount]float64{
			SoundWhistle: 0.25,
			SoundBoom:    0.8,
			SoundCrackle: 0.5,
		},
	}
}

// Validate reports out of range settings
func (c *Config) Validate() error {
	var errs []error
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		errs = append(errs, fmt.Errorf("master volume %v outside [0, 1]", c.MasterVolume))
	}
	if c.SampleRate < 8000 {
		errs = append(errs, fmt.Errorf("sample rate %d below 8000", c.SampleRate))
	}
	for i, v := range c.EffectVolumes {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s volume %v negative", SoundType(i), v))
		}
	}
	return errors.Join(errs...)
}
