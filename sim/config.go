package sim

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/fireworks/parameter"
)

// Color is the display color of rockets and particles
type Color = colorful.Color

// White is the text payload color
var White = Color{R: 1, G: 1, B: 1}

// Config holds the tuning options of the simulation core, all rates are per tick
type Config struct {
	// Rocket flight
	RocketGravity    float64
	RocketDrag       float64
	BurstFlightTicks float64
	TextFlightTicks  float64
	TextLiftScale    float64
	BaselineJitter   float64

	// Exploding particles
	ParticleFriction float64
	ParticleGravity  float64

	// Burst explosion
	BurstCount    int
	BurstMaxSpeed float64
	BurstFade     float64

	// Text explosion
	TextScatter         float64
	TextExplodeMaxSpeed float64
	TextFade            float64
	TextColor           Color
	GatherDamping       float64
	GatherEase          float64
	GatherEpsilon       float64
	WaitTicks           int

	// Drawing
	RocketRadiusX float64
	RocketRadiusY float64
	BurstSize     float64
	TextSize      float64
	GlowRadius    float64
	GlowStrength  float64
	TrailAlpha    float64
	Background    Color
}

// DefaultConfig returns the reference tuning
func DefaultConfig() Config {
	return Config{
		RocketGravity:    parameter.RocketGravity,
		RocketDrag:       parameter.RocketDrag,
		BurstFlightTicks: parameter.BurstFlightTicks,
		TextFlightTicks:  parameter.TextFlightTicks,
		TextLiftScale:    parameter.TextLiftScale,
		BaselineJitter:   parameter.BaselineJitter,

		ParticleFriction: parameter.ParticleFriction,
		ParticleGravity:  parameter.ParticleGravity,

		BurstCount:    parameter.BurstCount,
		BurstMaxSpeed: parameter.BurstMaxSpeed,
		BurstFade:     parameter.BurstFade,

		TextScatter:         parameter.TextScatter,
		TextExplodeMaxSpeed: parameter.TextExplodeMaxSpeed,
		TextFade:            parameter.TextFade,
		TextColor:           White,
		GatherDamping:       parameter.GatherDamping,
		GatherEase:          parameter.GatherEase,
		GatherEpsilon:       parameter.GatherEpsilon,
		WaitTicks:           parameter.WaitTicks,

		RocketRadiusX: parameter.RocketRadiusX,
		RocketRadiusY: parameter.RocketRadiusY,
		BurstSize:     parameter.BurstParticleSize,
		TextSize:      parameter.TextParticleSize,
		GlowRadius:    parameter.RocketGlowRadius,
		GlowStrength:  parameter.RocketGlowStrength,
		TrailAlpha:    parameter.TrailAlpha,
		Background: Color{
			R: parameter.BackgroundR / 255.0,
			G: parameter.BackgroundG / 255.0,
			B: parameter.BackgroundB / 255.0,
		},
	}
}

// Validate reports every option that would break simulation invariants
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	unit := func(name string, v float64) {
		if !(v > 0 && v <= 1) {
			errs = append(errs, fmt.Errorf("%s must be in (0, 1], got %v", name, v))
		}
	}

	positive("rocket gravity", c.RocketGravity)
	unit("rocket drag", c.RocketDrag)
	positive("burst flight ticks", c.BurstFlightTicks)
	positive("text flight ticks", c.TextFlightTicks)
	unit("text lift scale", c.TextLiftScale)
	unit("particle friction", c.ParticleFriction)
	unit("gather damping", c.GatherDamping)
	unit("gather ease", c.GatherEase)
	positive("gather epsilon", c.GatherEpsilon)
	positive("burst fade", c.BurstFade)
	positive("text fade", c.TextFade)
	unit("trail alpha", c.TrailAlpha)

	if c.BurstCount < 0 {
		errs = append(errs, fmt.Errorf("burst count must not be negative, got %d", c.BurstCount))
	}
	if c.WaitTicks < 0 {
		errs = append(errs, fmt.Errorf("wait ticks must not be negative, got %d", c.WaitTicks))
	}
	if c.BurstMaxSpeed < 0 || c.TextExplodeMaxSpeed < 0 || c.TextScatter < 0 {
		errs = append(errs, errors.New("particle speeds must not be negative"))
	}

	return errors.Join(errs...)
}
