package sim

import (
	"reflect"
	"slices"
	"testing"

	"github.com/lixenwraith/fireworks/glyph"
	"github.com/lixenwraith/fireworks/vmath"
)

func newTestWorld(t *testing.T, opts ...Option) *World {
	t.Helper()
	return NewWorld(DefaultConfig(), NewRand(2026), 800, 600, opts...)
}

func TestLaunchOriginsOnBaseline(t *testing.T) {
	w := newTestWorld(t)
	cfg := w.Config()

	for i := 0; i < 50; i++ {
		r := w.Launch(RocketBurst, vmath.V(300, 200), White, "")
		if r.Pos.Y != 600 {
			t.Fatalf("burst origin y = %v, want 600", r.Pos.Y)
		}
		if r.Pos.X < 400-cfg.BaselineJitter/2 || r.Pos.X >= 400+cfg.BaselineJitter/2 {
			t.Fatalf("burst origin x = %v outside jitter band", r.Pos.X)
		}
	}

	r := w.Launch(RocketText, vmath.V(400, 200), Color{G: 1}, "2026")
	if r.Pos != vmath.V(400, 600) {
		t.Errorf("text origin = %+v, want {400 600}", r.Pos)
	}
	if r.Color != White {
		t.Errorf("text rocket color = %v, want white", r.Color)
	}
	if got := len(w.Rockets()); got != 51 {
		t.Errorf("live rockets = %d, want 51", got)
	}
}

func TestTickExplodesBurstIntoSeventyParticles(t *testing.T) {
	log := &explosionLog{}
	w := newTestWorld(t, WithObserver(log))
	w.Launch(RocketBurst, vmath.V(400, 250), Color{R: 1}, "")

	for len(w.Rockets()) > 0 {
		w.Tick()
		if w.Ticks() > 1000 {
			t.Fatal("rocket never exploded")
		}
	}

	if len(log.exploded) != 1 || log.spawned[0] != 70 {
		t.Fatalf("explosions %d spawned %v, want one explosion of 70", len(log.exploded), log.spawned)
	}
	if got := len(w.Particles()); got != 70 {
		t.Fatalf("live particles = %d, want 70", got)
	}
	for i, p := range w.Particles() {
		if p.State != StateExploding {
			t.Fatalf("particle %d state %v, want exploding", i, p.State)
		}
	}
}

func TestFadedParticlesRemovedSameTick(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 5; i++ {
		w.Launch(RocketBurst, vmath.V(float64(100+120*i), 200), White, "")
	}

	for tick := 0; tick < 400; tick++ {
		w.Tick()
		for i, p := range w.Particles() {
			if p.Dead() {
				t.Fatalf("tick %d: particle %d survived with alpha %v", tick, i, p.Alpha)
			}
		}
	}
	if !w.Idle() {
		t.Errorf("world still has %d rockets and %d particles", len(w.Rockets()), len(w.Particles()))
	}
}

func TestDegenerateTargetRemovedWithinTwoTicks(t *testing.T) {
	w := newTestWorld(t)
	w.Launch(RocketBurst, vmath.V(400, 600), White, "")
	w.Launch(RocketBurst, vmath.V(400, 900), White, "")

	w.Tick()
	if len(w.Rockets()) != 0 {
		w.Tick()
	}
	if n := len(w.Rockets()); n != 0 {
		t.Fatalf("%d rockets still climbing", n)
	}
	for i, p := range w.Particles() {
		if !p.Pos.Finite() || !p.Vel.Finite() {
			t.Fatalf("particle %d has non-finite state %+v", i, p.Kinetic)
		}
	}
}

func TestTextRocketRoundTrip(t *testing.T) {
	sampler, err := glyph.New(glyph.DefaultOptions())
	if err != nil {
		t.Fatalf("glyph.New: %v", err)
	}
	defer sampler.Close()

	log := &explosionLog{}
	w := newTestWorld(t, WithSampler(sampler), WithObserver(log))
	w.Launch(RocketText, vmath.V(400, 200), White, "2026")

	for len(w.Rockets()) > 0 {
		w.Tick()
		if w.Ticks() > 1000 {
			t.Fatal("text rocket never exploded")
		}
	}

	at := log.exploded[0].Pos
	want := sampler.Sample("2026", at.X, at.Y)
	if len(want) == 0 {
		t.Fatal("sampler produced no points for 2026")
	}
	if log.spawned[0] != len(want) {
		t.Fatalf("spawned %d particles, want %d sampled points", log.spawned[0], len(want))
	}

	ps := w.Particles()
	if len(ps) != len(want) {
		t.Fatalf("live particles %d, want %d", len(ps), len(want))
	}
	dests := make([]vmath.Vec, len(ps))
	for i, p := range ps {
		dests[i] = p.Dest
	}
	if !slices.Equal(dests, want) {
		t.Fatal("particle destinations differ from the sample set")
	}

	// Every particle converges while none has yet dispersed
	for tick := 0; ; tick++ {
		waiting := 0
		for _, p := range w.Particles() {
			if p.State == StateWaiting {
				if p.Pos != p.Dest {
					t.Fatalf("waiting particle at %+v, destination %+v", p.Pos, p.Dest)
				}
				waiting++
			}
			if p.State == StateExploding {
				t.Fatalf("tick %d: a particle dispersed before all had gathered", tick)
			}
		}
		if waiting == len(want) {
			break
		}
		if tick > w.Config().WaitTicks {
			t.Fatalf("only %d of %d particles gathered", waiting, len(want))
		}
		w.Tick()
	}

	if n := len(w.Particles()); n != len(want) {
		t.Errorf("lost particles while gathering: %d of %d", n, len(want))
	}
}

func TestDrawDoesNotMutate(t *testing.T) {
	w := newTestWorld(t, WithSampler(&fixedSampler{offsets: []vmath.Vec{{X: 1}, {X: 2}}}))
	w.Launch(RocketBurst, vmath.V(300, 250), White, "")
	w.Launch(RocketText, vmath.V(400, 590), White, "OK")
	w.Tick()
	w.Tick()

	rockets := slices.Clone(w.Rockets())
	particles := slices.Clone(w.Particles())
	ticks := w.Ticks()

	first := &recordingSurface{}
	second := &recordingSurface{}
	w.Draw(first)
	w.Draw(second)

	if !reflect.DeepEqual(rockets, w.Rockets()) || !reflect.DeepEqual(particles, w.Particles()) || ticks != w.Ticks() {
		t.Fatal("Draw changed entity state")
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated Draw emitted different commands")
	}
	if len(first.fades) != 1 || first.fades[0] != w.Config().TrailAlpha {
		t.Errorf("fades = %v, want one at %v", first.fades, w.Config().TrailAlpha)
	}
	if len(first.shapes) != len(rockets)+len(particles) {
		t.Errorf("shapes = %d, want %d", len(first.shapes), len(rockets)+len(particles))
	}
}

func TestShapesSizing(t *testing.T) {
	w := newTestWorld(t)
	cfg := w.Config()
	w.AddRocket(NewRocket(cfg, RocketText, vmath.V(0, 600), vmath.V(0, 100), White, "A"))
	w.particles = append(w.particles,
		NewBurstParticle(vmath.Vec{}, vmath.Vec{}, White),
		NewTextParticle(vmath.Vec{}, vmath.Vec{}, vmath.V(5, 5), White),
	)

	shapes := w.Shapes(nil)
	if len(shapes) != 3 {
		t.Fatalf("got %d shapes", len(shapes))
	}
	if shapes[0].RX != cfg.RocketRadiusX || shapes[0].RY != cfg.RocketRadiusY || shapes[0].Glow != cfg.GlowRadius {
		t.Errorf("text rocket shape %+v", shapes[0])
	}
	if shapes[1].RX != cfg.BurstSize || shapes[2].RX != cfg.TextSize {
		t.Errorf("particle sizes %v, %v", shapes[1].RX, shapes[2].RX)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	cfg.RocketGravity = 0
	cfg.BurstFade = -1
	cfg.WaitTicks = -3
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error")
	}
}
