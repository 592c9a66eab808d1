package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	whistleDuration  = 900 * time.Millisecond
	whistleAttack    = 40 * time.Millisecond
	whistleRelease   = 300 * time.Millisecond
	whistleStartFreq = 1400.0
	whistleEndFreq   = 700.0

	boomDuration = 800 * time.Millisecond
	boomAttack   = 5 * time.Millisecond
	boomRelease  = 700 * time.Millisecond
	boomFreq     = 55.0

	crackleDuration = 1200 * time.Millisecond
	crackleAttack   = 5 * time.Millisecond
	crackleRelease  = 900 * time.Millisecond
	// Fraction of samples that carry a pop
	crackleDensity = 0.004
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, sweeping linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from start to end frequency over its duration
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     start,
		endFreq:  end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + (o.endFreq-o.freq)*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// crackler emits sparse decaying pops over silence
type crackler struct {
	duration int
	position int
	density  float64
	pop      float64
}

func (c *crackler) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.position >= c.duration {
			return i, i > 0
		}
		if rand.Float64() < c.density {
			c.pop = rand.Float64()*2 - 1
		}
		val := c.pop
		c.pop *= 0.9

		samples[i][0] = val
		samples[i][1] = val
		c.position++
	}
	return len(samples), true
}

func (c *crackler) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a gain stage
// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateWhistleSound generates the falling whistle of an ascending rocket
func CreateWhistleSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	tone := NewSweep(whistleStartFreq, whistleEndFreq, whistleDuration, WaveSine, rate)
	shaped := NewEnvelope(tone, whistleDuration, whistleAttack, whistleRelease, rate)

	vol := cfg.EffectVolumes[SoundWhistle] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateBoomSound generates a low thump with a noise tail
func CreateBoomSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	thump := NewSweep(boomFreq*2, boomFreq, boomDuration, WaveSine, rate)
	thumpShaped := NewEnvelope(thump, boomDuration, boomAttack, boomRelease, rate)

	noise := NewOscillator(0, boomDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, boomDuration, boomAttack, boomRelease/2, rate)

	mixed := beep.Mix(
		newVolume(thumpShaped, 0.7),
		newVolume(noiseShaped, 0.3),
	)

	vol := cfg.EffectVolumes[SoundBoom] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// CreateCrackleSound generates the sparkling pops of a text explosion
func CreateCrackleSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	pops := &crackler{duration: rate.N(crackleDuration), density: crackleDensity}
	shaped := NewEnvelope(pops, crackleDuration, crackleAttack, crackleRelease, rate)

	vol := cfg.EffectVolumes[SoundCrackle] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *Config) beep.Streamer {
	switch soundType {
	case SoundWhistle:
		return CreateWhistleSound(cfg)
	case SoundBoom:
		return CreateBoomSound(cfg)
	case SoundCrackle:
		return CreateCrackleSound(cfg)
	default:
		return nil
	}
}
