package sim

import (
	"math"

	"github.com/lixenwraith/fireworks/physics"
	"github.com/lixenwraith/fireworks/vmath"
)

// ParticleKind selects sizing, fade rate and the states a particle visits
type ParticleKind uint8

const (
	ParticleBurst ParticleKind = iota
	ParticleText
)

// ParticleState is the motion phase of a particle
// Only text particles visit Gathering and Waiting, Exploding is terminal
type ParticleState uint8

const (
	StateGathering ParticleState = iota
	StateWaiting
	StateExploding
)

func (s ParticleState) String() string {
	switch s {
	case StateGathering:
		return "gathering"
	case StateWaiting:
		return "waiting"
	case StateExploding:
		return "exploding"
	default:
		return "unknown"
	}
}

// Particle is a fading point mass produced by an explosion
type Particle struct {
	physics.Kinetic
	Color Color
	Alpha float64
	Kind  ParticleKind
	State ParticleState

	// Text only
	Dest      vmath.Vec
	WaitTimer int
}

// NewBurstParticle returns a particle already dispersing from pos
func NewBurstParticle(pos, vel vmath.Vec, color Color) Particle {
	return Particle{
		Kinetic: physics.Kinetic{Pos: pos, Vel: vel},
		Color:   color,
		Alpha:   1,
		Kind:    ParticleBurst,
		State:   StateExploding,
	}
}

// NewTextParticle returns a particle that will gather from pos onto dest
func NewTextParticle(pos, vel, dest vmath.Vec, color Color) Particle {
	return Particle{
		Kinetic: physics.Kinetic{Pos: pos, Vel: vel},
		Color:   color,
		Alpha:   1,
		Kind:    ParticleText,
		State:   StateGathering,
		Dest:    dest,
	}
}

// Dead reports whether the particle has fully faded
func (p *Particle) Dead() bool {
	return p.Alpha <= 0
}

// Update advances one tick of the particle state machine
func (p *Particle) Update(cfg *Config, rng Random) {
	switch p.State {
	case StateGathering:
		physics.ApplyDrag(&p.Kinetic, cfg.GatherDamping, cfg.GatherDamping)
		physics.Integrate(&p.Kinetic)
		if physics.EaseToward(&p.Kinetic, p.Dest, cfg.GatherEase) < cfg.GatherEpsilon {
			physics.Freeze(&p.Kinetic, p.Dest)
			p.State = StateWaiting
			p.WaitTimer = cfg.WaitTicks
		}

	case StateWaiting:
		p.WaitTimer--
		if p.WaitTimer <= 0 {
			p.State = StateExploding
			physics.SetImpulse(&p.Kinetic, vmath.FromPolar(
				rng.Float64()*2*math.Pi,
				rng.Float64()*cfg.TextExplodeMaxSpeed,
			))
		}

	default:
		physics.ApplyDrag(&p.Kinetic, cfg.ParticleFriction, cfg.ParticleFriction)
		physics.ApplyGravity(&p.Kinetic, cfg.ParticleGravity)
		physics.Integrate(&p.Kinetic)
		if p.Kind == ParticleText {
			p.Alpha -= cfg.TextFade
		} else {
			p.Alpha -= cfg.BurstFade
		}
	}
}
