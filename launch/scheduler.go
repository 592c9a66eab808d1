package launch

import (
	"time"

	"github.com/lixenwraith/fireworks/show"
	"github.com/lixenwraith/fireworks/vmath"
)

// Scheduler fires launches on host-driven time
// Advance is called between ticks from the frame loop, never during one
type Scheduler struct {
	launcher *Launcher
	cfg      Config

	elapsed        time.Duration
	nextBackground time.Duration
	nextText       time.Duration
	wordIndex      int

	cues      []show.Cue
	nextCue   int
	cueOffset time.Duration
	loopCues  bool
}

// NewScheduler starts both periodic streams at time zero
func NewScheduler(l *Launcher, cfg Config) *Scheduler {
	return &Scheduler{
		launcher:       l,
		cfg:            cfg,
		nextBackground: cfg.BackgroundInterval,
		nextText:       cfg.FirstTextDelay,
	}
}

// Play queues a show: its cues fire at their offsets from now and its words replace the rotation
func (s *Scheduler) Play(sh *show.Show) {
	if len(sh.Words) > 0 {
		s.cfg.Words = append([]string(nil), sh.Words...)
		s.wordIndex = 0
	}
	s.cues = sh.Cues
	s.nextCue = 0
	s.cueOffset = s.elapsed
	s.loopCues = sh.Loop && sh.Duration() > 0
}

// Elapsed returns total advanced time
func (s *Scheduler) Elapsed() time.Duration {
	return s.elapsed
}

// Advance moves the clock forward by dt and fires everything that came due
// A periodic stream fires at most once per call, a long stall skips missed launches
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	s.elapsed += dt

	if s.cfg.BackgroundInterval > 0 && s.elapsed >= s.nextBackground {
		s.launcher.LaunchBackgroundRocket()
		s.nextBackground = next(s.nextBackground, s.elapsed, s.cfg.BackgroundInterval)
	}

	if s.cfg.TextInterval > 0 && len(s.cfg.Words) > 0 && s.elapsed >= s.nextText {
		s.LaunchNextWord()
		s.nextText = nextMultiple(s.elapsed, s.cfg.TextInterval)
	}

	s.fireCues()
}

// next returns the following deadline after due, skipping any already passed
func next(due, now, interval time.Duration) time.Duration {
	due += interval
	if due <= now {
		due = now + interval
	}
	return due
}

// nextMultiple returns the first multiple of interval after now
// The text stream keeps its interval grid from time zero, independent of the first delay
func nextMultiple(now, interval time.Duration) time.Duration {
	return (now/interval + 1) * interval
}

// LaunchNextWord fires the current word and advances the rotation, wrapping at the end
func (s *Scheduler) LaunchNextWord() string {
	if len(s.cfg.Words) == 0 {
		return ""
	}
	word := s.cfg.Words[s.wordIndex]
	s.wordIndex = (s.wordIndex + 1) % len(s.cfg.Words)
	s.launcher.LaunchTextRocket(word)
	return word
}

// WordIndex returns the index of the word the next text launch will use
func (s *Scheduler) WordIndex() int {
	return s.wordIndex
}

func (s *Scheduler) fireCues() {
	for len(s.cues) > 0 {
		if s.nextCue == len(s.cues) {
			if !s.loopCues {
				return
			}
			s.cueOffset += s.cues[len(s.cues)-1].At
			s.nextCue = 0
		}
		c := s.cues[s.nextCue]
		if s.elapsed < s.cueOffset+c.At {
			return
		}
		s.fireCue(c)
		s.nextCue++
	}
}

func (s *Scheduler) fireCue(c show.Cue) {
	l := s.launcher
	w, h := l.world.Size()

	if c.Text != "" {
		if c.X == 0 && c.Y == 0 {
			l.LaunchTextRocket(c.Text)
			return
		}
		l.LaunchTextAt(c.Text, vmath.V(c.X*w, c.Y*h))
		return
	}

	hue := l.randomHue()
	if c.Hue != nil {
		hue = *c.Hue
	}
	l.LaunchBurstAt(vmath.V(c.X*w, c.Y*h), hue)
}
