// Package config loads the TOML file that tunes the simulation and frontends
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/fireworks/audio"
	"github.com/lixenwraith/fireworks/glyph"
	"github.com/lixenwraith/fireworks/launch"
	"github.com/lixenwraith/fireworks/logging"
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/sim"
)

type Config struct {
	// Seed of the simulation generator, 0 seeds from the clock
	Seed uint64 `toml:"seed"`

	Rocket   RocketConfig   `toml:"rocket"`
	Particle ParticleConfig `toml:"particle"`
	Burst    BurstConfig    `toml:"burst"`
	Text     TextConfig     `toml:"text"`
	Glyph    GlyphConfig    `toml:"glyph"`
	Launch   LaunchConfig   `toml:"launch"`
	Render   RenderConfig   `toml:"render"`
	Audio    AudioConfig    `toml:"audio"`
	Logging  LoggingConfig  `toml:"logging"`
}

type RocketConfig struct {
	Gravity          float64 `toml:"gravity"`
	Drag             float64 `toml:"drag"`
	BurstFlightTicks float64 `toml:"burst_flight_ticks"`
	TextFlightTicks  float64 `toml:"text_flight_ticks"`
	TextLiftScale    float64 `toml:"text_lift_scale"`
	BaselineJitter   float64 `toml:"baseline_jitter"`
}

type ParticleConfig struct {
	Friction float64 `toml:"friction"`
	Gravity  float64 `toml:"gravity"`
}

type BurstConfig struct {
	Count    int     `toml:"count"`
	MaxSpeed float64 `toml:"max_speed"`
	Fade     float64 `toml:"fade"`
	Size     float64 `toml:"size"`
}

type TextConfig struct {
	Scatter         float64 `toml:"scatter"`
	ExplodeMaxSpeed float64 `toml:"explode_max_speed"`
	Fade            float64 `toml:"fade"`
	Size            float64 `toml:"size"`
	Color           string  `toml:"color"`
	GatherDamping   float64 `toml:"gather_damping"`
	GatherEase      float64 `toml:"gather_ease"`
	GatherEpsilon   float64 `toml:"gather_epsilon"`
	WaitTicks       int     `toml:"wait_ticks"`
}

type GlyphConfig struct {
	// Empty selects the embedded Go Bold face
	FontPath  string  `toml:"font_path"`
	Size      float64 `toml:"size"`
	Height    int     `toml:"height"`
	Margin    int     `toml:"margin"`
	Baseline  int     `toml:"baseline"`
	Stride    int     `toml:"stride"`
	Threshold uint8   `toml:"threshold"`
}

type LaunchConfig struct {
	Words               []string      `toml:"words"`
	BackgroundInterval  time.Duration `toml:"background_interval"`
	TextInterval        time.Duration `toml:"text_interval"`
	FirstTextDelay      time.Duration `toml:"first_text_delay"`
	BackgroundLightness float64       `toml:"background_lightness"`
	PointerLightness    float64       `toml:"pointer_lightness"`
}

type RenderConfig struct {
	TrailAlpha    float64 `toml:"trail_alpha"`
	Background    string  `toml:"background"`
	RocketRadiusX float64 `toml:"rocket_radius_x"`
	RocketRadiusY float64 `toml:"rocket_radius_y"`
	GlowRadius    float64 `toml:"glow_radius"`
	GlowStrength  float64 `toml:"glow_strength"`
	// World units covered by one terminal dot
	UnitsPerDot float64 `toml:"units_per_dot"`
	// Window frontend size in pixels
	WindowWidth  int  `toml:"window_width"`
	WindowHeight int  `toml:"window_height"`
	ShowStatus   bool `toml:"show_status"`
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"`
	SampleRate int     `toml:"sample_rate"`
	Whistle    float64 `toml:"whistle"`
	Boom       float64 `toml:"boom"`
	Crackle    float64 `toml:"crackle"`
}

type LoggingConfig struct {
	Enabled bool   `toml:"enabled"`
	Level   string `toml:"level"`
	Format  string `toml:"format"` // "json" or "console"
	Dir     string `toml:"dir"`
}

// Load decodes path over the defaults, an empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the reference configuration
func Default() *Config {
	s := sim.DefaultConfig()
	g := glyph.DefaultOptions()
	l := launch.DefaultConfig()
	a := audio.DefaultConfig()
	lg := logging.DefaultConfig()

	return &Config{
		Rocket: RocketConfig{
			Gravity:          s.RocketGravity,
			Drag:             s.RocketDrag,
			BurstFlightTicks: s.BurstFlightTicks,
			TextFlightTicks:  s.TextFlightTicks,
			TextLiftScale:    s.TextLiftScale,
			BaselineJitter:   s.BaselineJitter,
		},
		Particle: ParticleConfig{
			Friction: s.ParticleFriction,
			Gravity:  s.ParticleGravity,
		},
		Burst: BurstConfig{
			Count:    s.BurstCount,
			MaxSpeed: s.BurstMaxSpeed,
			Fade:     s.BurstFade,
			Size:     s.BurstSize,
		},
		Text: TextConfig{
			Scatter:         s.TextScatter,
			ExplodeMaxSpeed: s.TextExplodeMaxSpeed,
			Fade:            s.TextFade,
			Size:            s.TextSize,
			Color:           s.TextColor.Hex(),
			GatherDamping:   s.GatherDamping,
			GatherEase:      s.GatherEase,
			GatherEpsilon:   s.GatherEpsilon,
			WaitTicks:       s.WaitTicks,
		},
		Glyph: GlyphConfig{
			Size:      g.Size,
			Height:    g.Height,
			Margin:    g.Margin,
			Baseline:  g.Baseline,
			Stride:    g.Stride,
			Threshold: g.Threshold,
		},
		Launch: LaunchConfig{
			Words:               l.Words,
			BackgroundInterval:  l.BackgroundInterval,
			TextInterval:        l.TextInterval,
			FirstTextDelay:      l.FirstTextDelay,
			BackgroundLightness: l.BackgroundLightness,
			PointerLightness:    l.PointerLightness,
		},
		Render: RenderConfig{
			TrailAlpha:    s.TrailAlpha,
			Background:    s.Background.Hex(),
			RocketRadiusX: s.RocketRadiusX,
			RocketRadiusY: s.RocketRadiusY,
			GlowRadius:    s.GlowRadius,
			GlowStrength:  s.GlowStrength,
			UnitsPerDot:   parameter.WorldUnitsPerDot,
			WindowWidth:   parameter.WindowWidth,
			WindowHeight:  parameter.WindowHeight,
			ShowStatus:    true,
		},
		Audio: AudioConfig{
			Enabled:    a.Enabled,
			Volume:     a.MasterVolume,
			SampleRate: a.SampleRate,
			Whistle:    a.EffectVolumes[audio.SoundWhistle],
			Boom:       a.EffectVolumes[audio.SoundBoom],
			Crackle:    a.EffectVolumes[audio.SoundCrackle],
		},
		Logging: LoggingConfig{
			Enabled: lg.Enabled,
			Level:   lg.Level,
			Format:  lg.Format,
			Dir:     lg.Dir,
		},
	}
}

// Validate joins every error of the derived component configs
func (c *Config) Validate() error {
	var errs []error

	if s, err := c.Sim(); err != nil {
		errs = append(errs, err)
	} else if err := s.Validate(); err != nil {
		errs = append(errs, err)
	}

	g := c.Glyph
	if g.Size <= 0 || g.Height <= 0 || g.Stride <= 0 || g.Margin < 0 {
		errs = append(errs, fmt.Errorf("glyph: size, height and stride must be positive"))
	}
	if g.Baseline < 0 || g.Baseline > g.Height {
		errs = append(errs, fmt.Errorf("glyph: baseline %d outside [0, %d]", g.Baseline, g.Height))
	}

	l := c.Launch
	if l.BackgroundInterval < 0 || l.TextInterval < 0 || l.FirstTextDelay < 0 {
		errs = append(errs, errors.New("launch: intervals must not be negative"))
	}
	for _, v := range []float64{l.BackgroundLightness, l.PointerLightness} {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("launch: lightness %v outside [0, 1]", v))
		}
	}

	if c.Render.UnitsPerDot <= 0 {
		errs = append(errs, fmt.Errorf("render: units_per_dot must be positive, got %v", c.Render.UnitsPerDot))
	}
	if c.Render.WindowWidth <= 0 || c.Render.WindowHeight <= 0 {
		errs = append(errs, errors.New("render: window size must be positive"))
	}

	if err := c.AudioParams().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("audio: %w", err))
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging: unknown format %q", c.Logging.Format))
	}

	return errors.Join(errs...)
}

// Sim converts the physics and drawing sections into the simulation config
func (c *Config) Sim() (sim.Config, error) {
	text, err := colorful.Hex(c.Text.Color)
	if err != nil {
		return sim.Config{}, fmt.Errorf("text color %q: %w", c.Text.Color, err)
	}
	bg, err := colorful.Hex(c.Render.Background)
	if err != nil {
		return sim.Config{}, fmt.Errorf("background %q: %w", c.Render.Background, err)
	}

	return sim.Config{
		RocketGravity:    c.Rocket.Gravity,
		RocketDrag:       c.Rocket.Drag,
		BurstFlightTicks: c.Rocket.BurstFlightTicks,
		TextFlightTicks:  c.Rocket.TextFlightTicks,
		TextLiftScale:    c.Rocket.TextLiftScale,
		BaselineJitter:   c.Rocket.BaselineJitter,

		ParticleFriction: c.Particle.Friction,
		ParticleGravity:  c.Particle.Gravity,

		BurstCount:    c.Burst.Count,
		BurstMaxSpeed: c.Burst.MaxSpeed,
		BurstFade:     c.Burst.Fade,

		TextScatter:         c.Text.Scatter,
		TextExplodeMaxSpeed: c.Text.ExplodeMaxSpeed,
		TextFade:            c.Text.Fade,
		TextColor:           text,
		GatherDamping:       c.Text.GatherDamping,
		GatherEase:          c.Text.GatherEase,
		GatherEpsilon:       c.Text.GatherEpsilon,
		WaitTicks:           c.Text.WaitTicks,

		RocketRadiusX: c.Render.RocketRadiusX,
		RocketRadiusY: c.Render.RocketRadiusY,
		BurstSize:     c.Burst.Size,
		TextSize:      c.Text.Size,
		GlowRadius:    c.Render.GlowRadius,
		GlowStrength:  c.Render.GlowStrength,
		TrailAlpha:    c.Render.TrailAlpha,
		Background:    bg,
	}, nil
}

// GlyphOptions converts the glyph section, reading the font file when set
func (c *Config) GlyphOptions() (glyph.Options, error) {
	opts := glyph.Options{
		Size:      c.Glyph.Size,
		Height:    c.Glyph.Height,
		Margin:    c.Glyph.Margin,
		Baseline:  c.Glyph.Baseline,
		Stride:    c.Glyph.Stride,
		Threshold: c.Glyph.Threshold,
	}
	if c.Glyph.FontPath != "" {
		data, err := os.ReadFile(c.Glyph.FontPath)
		if err != nil {
			return glyph.Options{}, fmt.Errorf("read font %s: %w", c.Glyph.FontPath, err)
		}
		opts.FontData = data
	}
	return opts, nil
}

// LaunchParams converts the launch section, target ranges keep their reference values
func (c *Config) LaunchParams() launch.Config {
	l := launch.DefaultConfig()
	l.Words = append([]string(nil), c.Launch.Words...)
	l.BackgroundInterval = c.Launch.BackgroundInterval
	l.TextInterval = c.Launch.TextInterval
	l.FirstTextDelay = c.Launch.FirstTextDelay
	l.BackgroundLightness = c.Launch.BackgroundLightness
	l.PointerLightness = c.Launch.PointerLightness
	return l
}

// AudioParams converts the audio section
func (c *Config) AudioParams() *audio.Config {
	a := audio.DefaultConfig()
	a.Enabled = c.Audio.Enabled
	a.MasterVolume = c.Audio.Volume
	a.SampleRate = c.Audio.SampleRate
	a.EffectVolumes[audio.SoundWhistle] = c.Audio.Whistle
	a.EffectVolumes[audio.SoundBoom] = c.Audio.Boom
	a.EffectVolumes[audio.SoundCrackle] = c.Audio.Crackle
	return a
}

// LogParams converts the logging section
func (c *Config) LogParams() logging.Config {
	return logging.Config{
		Enabled: c.Logging.Enabled,
		Level:   c.Logging.Level,
		Format:  c.Logging.Format,
		Dir:     c.Logging.Dir,
	}
}
