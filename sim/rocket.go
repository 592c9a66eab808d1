package sim

import (
	"math"

	"github.com/lixenwraith/fireworks/physics"
	"github.com/lixenwraith/fireworks/vmath"
)

// RocketKind selects what a rocket explodes into
type RocketKind uint8

const (
	// RocketBurst explodes into a uniform radial burst of its color
	RocketBurst RocketKind = iota
	// RocketText explodes into particles forming its payload text
	RocketText
)

func (k RocketKind) String() string {
	switch k {
	case RocketBurst:
		return "burst"
	case RocketText:
		return "text"
	default:
		return "unknown"
	}
}

// GlyphSampler turns text anchored at (cx, cy) into destination points
type GlyphSampler interface {
	Sample(text string, cx, cy float64) []vmath.Vec
}

// Rocket ascends toward Target and explodes on arrival
type Rocket struct {
	physics.Kinetic
	Target  vmath.Vec
	Color   Color
	Kind    RocketKind
	Payload string // Text to form, only meaningful for RocketText
	Gravity float64
}

// NewRocket aims a rocket from origin at target
// Horizontal speed covers the distance over the kind's flight ticks, vertical
// speed is chosen so gravity brings the rocket to apex at target height
func NewRocket(cfg *Config, kind RocketKind, origin, target vmath.Vec, color Color, payload string) Rocket {
	flight := cfg.BurstFlightTicks
	if kind == RocketText {
		flight = cfg.TextFlightTicks
		color = cfg.TextColor
	}

	vy := 0.0
	// Target at or below the baseline has no real launch speed, it arrives on first update
	if rise := origin.Y - target.Y; rise > 0 {
		vy = -math.Sqrt(2 * cfg.RocketGravity * rise)
	}
	if kind == RocketText {
		vy *= cfg.TextLiftScale
	}

	return Rocket{
		Kinetic: physics.Kinetic{
			Pos: origin,
			Vel: vmath.V((target.X-origin.X)/flight, vy),
		},
		Target:  target,
		Color:   color,
		Kind:    kind,
		Payload: payload,
		Gravity: cfg.RocketGravity,
	}
}

// Update advances one tick and reports arrival
// Arrival is apex reached (vertical velocity no longer negative) or target height reached, whichever comes first
func (r *Rocket) Update(cfg *Config) bool {
	physics.ApplyDrag(&r.Kinetic, cfg.RocketDrag, 1)
	physics.ApplyGravity(&r.Kinetic, r.Gravity)
	physics.Integrate(&r.Kinetic)

	return r.Vel.Y >= 0 || r.Pos.Y <= r.Target.Y
}

// Explode appends the rocket's particles to dst at its current position
func (r *Rocket) Explode(cfg *Config, rng Random, sampler GlyphSampler, dst []Particle) []Particle {
	if r.Kind == RocketText {
		if sampler == nil {
			return dst
		}
		for _, dest := range sampler.Sample(r.Payload, r.Pos.X, r.Pos.Y) {
			vel := vmath.V(
				(rng.Float64()-0.5)*cfg.TextScatter,
				(rng.Float64()-0.5)*cfg.TextScatter,
			)
			dst = append(dst, NewTextParticle(r.Pos, vel, dest, cfg.TextColor))
		}
		return dst
	}

	for i := 0; i < cfg.BurstCount; i++ {
		vel := vmath.FromPolar(rng.Float64()*2*math.Pi, rng.Float64()*cfg.BurstMaxSpeed)
		dst = append(dst, NewBurstParticle(r.Pos, vel, r.Color))
	}
	return dst
}
