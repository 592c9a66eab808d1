// Package launch issues rockets into a sim.World: background bursts, pointer
// bursts, text rockets cycling a word list, and scripted show cues
package launch

import (
	"math"
	"slices"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/sim"
	"github.com/lixenwraith/fireworks/vmath"
)

// Config controls target selection, colors and cadence
type Config struct {
	Words []string

	// Zero disables the stream
	BackgroundInterval time.Duration
	TextInterval       time.Duration
	FirstTextDelay     time.Duration

	BackgroundLightness float64
	PointerLightness    float64

	// Background target x in [MinX, MaxX]*width, y in TopY + [0, Span]*height
	TargetMinX float64
	TargetMaxX float64
	TargetTopY float64
	TargetSpan float64

	// Text target as fractions of the surface
	TextTargetX float64
	TextTargetY float64
}

// DefaultConfig returns the reference cadence and word list
func DefaultConfig() Config {
	return Config{
		Words:               slices.Clone(parameter.DefaultWords),
		BackgroundInterval:  parameter.BackgroundInterval,
		TextInterval:        parameter.TextInterval,
		FirstTextDelay:      parameter.FirstTextDelay,
		BackgroundLightness: parameter.BackgroundLightness,
		PointerLightness:    parameter.PointerLightness,
		TargetMinX:          parameter.BackgroundTargetMinX,
		TargetMaxX:          parameter.BackgroundTargetMaxX,
		TargetTopY:          parameter.BackgroundTargetTopY,
		TargetSpan:          parameter.BackgroundTargetSpan,
		TextTargetX:         parameter.TextTargetX,
		TextTargetY:         parameter.TextTargetY,
	}
}

// Hue returns a fully saturated color of hue degrees and given HSL lightness
func Hue(degrees, lightness float64) sim.Color {
	degrees = math.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}
	return colorful.Hsl(degrees, 1, lightness).Clamped()
}

// Launcher picks targets and colors and fires rockets into a world
type Launcher struct {
	world *sim.World
	rng   sim.Random
	cfg   Config
}

// NewLauncher binds a launcher to world
func NewLauncher(world *sim.World, rng sim.Random, cfg Config) *Launcher {
	return &Launcher{world: world, rng: rng, cfg: cfg}
}

// randomHue returns an integer hue in [0, 360)
func (l *Launcher) randomHue() float64 {
	return math.Floor(l.rng.Float64() * 360)
}

// LaunchBackgroundRocket fires a burst at a random target in the upper part of the surface
func (l *Launcher) LaunchBackgroundRocket() sim.Rocket {
	w, h := l.world.Size()
	target := vmath.V(
		w*(l.cfg.TargetMinX+l.rng.Float64()*(l.cfg.TargetMaxX-l.cfg.TargetMinX)),
		l.cfg.TargetTopY+l.rng.Float64()*h*l.cfg.TargetSpan,
	)
	color := Hue(l.randomHue(), l.cfg.BackgroundLightness)
	return l.world.Launch(sim.RocketBurst, target, color, "")
}

// LaunchTextRocket fires a text rocket at the fixed text target near top center
func (l *Launcher) LaunchTextRocket(text string) sim.Rocket {
	w, h := l.world.Size()
	return l.LaunchTextAt(text, vmath.V(w*l.cfg.TextTargetX, h*l.cfg.TextTargetY))
}

// LaunchTextAt fires a text rocket at an explicit target
func (l *Launcher) LaunchTextAt(text string, target vmath.Vec) sim.Rocket {
	return l.world.Launch(sim.RocketText, target, sim.White, text)
}

// PointerPress fires a burst at the pointer with a random light hue
func (l *Launcher) PointerPress(x, y float64) sim.Rocket {
	color := Hue(l.randomHue(), l.cfg.PointerLightness)
	return l.world.Launch(sim.RocketBurst, vmath.V(x, y), color, "")
}

// LaunchBurstAt fires a burst at an explicit target and hue
func (l *Launcher) LaunchBurstAt(target vmath.Vec, hue float64) sim.Rocket {
	return l.world.Launch(sim.RocketBurst, target, Hue(hue, l.cfg.BackgroundLightness), "")
}
