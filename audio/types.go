package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundWhistle SoundType = iota // Rocket launch
	SoundBoom                     // Burst explosion
	SoundCrackle                  // Text explosion
	soundTypeCount
)

// String returns the config key of the sound
func (s SoundType) String() string {
	switch s {
	case SoundWhistle:
		return "whistle"
	case SoundBoom:
		return "boom"
	case SoundCrackle:
		return "crackle"
	default:
		return "unknown"
	}
}
