package parameter

// Burst explosion
const (
	// BurstCount is the number of particles spawned by a burst rocket
	BurstCount = 70

	// BurstMaxSpeed bounds initial burst particle speed (units/tick)
	BurstMaxSpeed = 15.0

	// BurstFade is opacity lost per tick by burst particles
	BurstFade = 0.02
)

// Text explosion
const (
	// TextScatter is the full width of the per-axis uniform initial velocity of text particles
	TextScatter = 8.0

	// TextExplodeMaxSpeed bounds the dispersal speed after a glyph is held
	TextExplodeMaxSpeed = 10.0

	// TextFade is opacity lost per tick by text particles, lower than BurstFade so words linger
	TextFade = 0.015
)

// Drawn sizes in world units
const (
	RocketRadiusX      = 3.0
	RocketRadiusY      = 8.0
	BurstParticleSize  = 2.5
	TextParticleSize   = 1.8
	RocketGlowRadius   = 10.0
	RocketGlowStrength = 0.35
)
