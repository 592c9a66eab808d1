package parameter

import "time"

// Launch cadence
const (
	BackgroundInterval = 1200 * time.Millisecond
	TextInterval       = 7 * time.Second
	FirstTextDelay     = 1 * time.Second

	// FrameInterval is the nominal frame period the per-tick constants are tuned for
	FrameInterval = time.Second / 60
)

// Background targets as fractions of the surface, plus a fixed top offset
const (
	BackgroundTargetMinX = 0.1
	BackgroundTargetMaxX = 0.9
	BackgroundTargetTopY = 100.0
	BackgroundTargetSpan = 0.5
)

// Text rocket target as fractions of the surface
const (
	TextTargetX = 0.5
	TextTargetY = 1.0 / 3.0
)

// DefaultWords is the text rocket rotation
var DefaultWords = []string{"FELIZ", "AÑO", "NUEVO", "2026"}
