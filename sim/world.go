package sim

import (
	"github.com/lixenwraith/fireworks/vmath"
)

// World owns the live rockets and particles and advances them per tick
type World struct {
	cfg      Config
	rng      Random
	sampler  GlyphSampler
	observer Observer

	width, height float64

	rockets   []Rocket
	particles []Particle
	shapes    []Shape

	ticks uint64
}

// Option configures a World at construction
type Option func(*World)

// WithSampler sets the glyph sampler used by text rockets, without one text rockets explode into nothing
func WithSampler(s GlyphSampler) Option {
	return func(w *World) { w.sampler = s }
}

// WithObserver sets the lifecycle observer
func WithObserver(o Observer) Option {
	return func(w *World) {
		if o != nil {
			w.observer = o
		}
	}
}

// NewWorld creates an empty world over a surface of the given size
func NewWorld(cfg Config, rng Random, width, height float64, opts ...Option) *World {
	w := &World{
		cfg:      cfg,
		rng:      rng,
		observer: nopObserver{},
		width:    width,
		height:   height,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Config returns the active tuning
func (w *World) Config() *Config {
	return &w.cfg
}

// Resize updates the surface dimensions used for launch baselines
func (w *World) Resize(width, height float64) {
	w.width = width
	w.height = height
}

// Size returns the surface dimensions
func (w *World) Size() (width, height float64) {
	return w.width, w.height
}

// Ticks returns the number of completed ticks
func (w *World) Ticks() uint64 {
	return w.ticks
}

// Rockets returns the live rockets, valid until the next Tick or Launch
func (w *World) Rockets() []Rocket {
	return w.rockets
}

// Particles returns the live particles, valid until the next Tick
func (w *World) Particles() []Particle {
	return w.particles
}

// Launch fires a rocket from the bottom baseline at target
// Burst rockets start at a jittered point around center, text rockets at exact center
func (w *World) Launch(kind RocketKind, target vmath.Vec, color Color, payload string) Rocket {
	origin := vmath.V(w.width/2, w.height)
	if kind == RocketBurst {
		origin.X += (w.rng.Float64() - 0.5) * w.cfg.BaselineJitter
	}

	r := NewRocket(&w.cfg, kind, origin, target, color, payload)
	w.AddRocket(r)
	return r
}

// AddRocket appends an already-aimed rocket
func (w *World) AddRocket(r Rocket) {
	w.rockets = append(w.rockets, r)
	w.observer.RocketLaunched(&w.rockets[len(w.rockets)-1])
}

// Tick advances every rocket, exploding arrivals, then every particle, dropping faded ones
// Particles spawned this tick are advanced in the same tick
func (w *World) Tick() {
	live := w.rockets[:0]
	for i := range w.rockets {
		r := &w.rockets[i]
		if !r.Update(&w.cfg) {
			live = append(live, *r)
			continue
		}
		before := len(w.particles)
		w.particles = r.Explode(&w.cfg, w.rng, w.sampler, w.particles)
		w.observer.RocketExploded(r, len(w.particles)-before)
	}
	clear(w.rockets[len(live):])
	w.rockets = live

	kept := w.particles[:0]
	for i := range w.particles {
		p := &w.particles[i]
		p.Update(&w.cfg, w.rng)
		if !p.Dead() {
			kept = append(kept, *p)
		}
	}
	w.particles = kept

	w.ticks++
}

// Idle reports whether nothing is live
func (w *World) Idle() bool {
	return len(w.rockets) == 0 && len(w.particles) == 0
}
