// Package show loads scripted fireworks shows from YAML
package show

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Cue is a single timed launch
// A cue with Text launches a text rocket, otherwise a burst at (X, Y)
type Cue struct {
	At   time.Duration `yaml:"at"`
	Text string        `yaml:"text,omitempty"`

	// X and Y are fractions of the surface, zero for text cues selects the default text target
	X float64 `yaml:"x,omitempty"`
	Y float64 `yaml:"y,omitempty"`

	// Hue in degrees, nil picks a random hue
	Hue *float64 `yaml:"hue,omitempty"`
}

// Show is a word rotation plus a list of cues
type Show struct {
	Name  string   `yaml:"name"`
	Words []string `yaml:"words"`
	// Loop restarts the cue list after the last cue, measured from the last cue time
	Loop bool  `yaml:"loop"`
	Cues []Cue `yaml:"cues"`
}

// Load reads and validates a show file
func Load(path string) (*Show, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read show %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("show %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a show document, cues are returned sorted by time
func Parse(data []byte) (*Show, error) {
	var s Show
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	slices.SortStableFunc(s.Cues, func(a, b Cue) int {
		return cmp.Compare(a.At, b.At)
	})
	return &s, nil
}

// Validate reports malformed cues
func (s *Show) Validate() error {
	var errs []error
	for i, c := range s.Cues {
		if c.At < 0 {
			errs = append(errs, fmt.Errorf("cue %d: negative time %v", i, c.At))
		}
		if c.X < 0 || c.X > 1 || c.Y < 0 || c.Y > 1 {
			errs = append(errs, fmt.Errorf("cue %d: position (%v, %v) outside [0, 1]", i, c.X, c.Y))
		}
		if c.Text == "" && (c.X == 0 && c.Y == 0) {
			errs = append(errs, fmt.Errorf("cue %d: burst cue needs a position", i))
		}
	}
	for i, w := range s.Words {
		if strings.TrimSpace(w) == "" {
			errs = append(errs, fmt.Errorf("word %d is blank", i))
		}
	}
	return errors.Join(errs...)
}

// Duration returns the time of the last cue
func (s *Show) Duration() time.Duration {
	if len(s.Cues) == 0 {
		return 0
	}
	return s.Cues[len(s.Cues)-1].At
}
