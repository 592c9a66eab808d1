package parameter

// Rocket flight, expressed per tick at the nominal 60 Hz frame rate
const (
	// RocketGravity is downward acceleration applied to rocket vertical velocity every tick
	RocketGravity = 0.05

	// RocketDrag is horizontal velocity retention per tick
	RocketDrag = 0.998

	// BurstFlightTicks divides horizontal distance to target for burst rockets
	BurstFlightTicks = 100.0

	// TextFlightTicks divides horizontal distance to target for text rockets
	TextFlightTicks = 110.0

	// TextLiftScale shortens text rocket climb so the payload opens slightly below target
	TextLiftScale = 0.95

	// BaselineJitter is the horizontal spread of burst rocket launch points around center
	BaselineJitter = 200.0
)

// Particle motion, per tick
const (
	// ParticleFriction is velocity retention per tick while Exploding
	ParticleFriction = 0.95

	// ParticleGravity is added to vertical velocity per tick while Exploding
	ParticleGravity = 0.06

	// GatherDamping is velocity retention per tick while Gathering
	GatherDamping = 0.92

	// GatherEase is the fraction of remaining distance to destination covered per tick
	GatherEase = 0.1

	// GatherEpsilon is the distance below which a gathering particle snaps to its destination
	GatherEpsilon = 1.0

	// WaitTicks is how long a formed glyph is held before dispersing
	WaitTicks = 150
)
