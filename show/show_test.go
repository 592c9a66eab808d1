package show

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sample = `
name: midnight
words: [HAPPY, NEW, YEAR]
loop: true
cues:
  - at: 5s
    text: "2026"
  - at: 1.5s
    x: 0.25
    y: 0.3
    hue: 120
  - at: 3s
    x: 0.75
    y: 0.2
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Name != "midnight" || !s.Loop {
		t.Errorf("header = %q loop=%v", s.Name, s.Loop)
	}
	if len(s.Words) != 3 || s.Words[2] != "YEAR" {
		t.Errorf("words = %v", s.Words)
	}
	if len(s.Cues) != 3 {
		t.Fatalf("got %d cues", len(s.Cues))
	}

	wantAt := []time.Duration{1500 * time.Millisecond, 3 * time.Second, 5 * time.Second}
	for i, c := range s.Cues {
		if c.At != wantAt[i] {
			t.Errorf("cue %d at %v, want %v", i, c.At, wantAt[i])
		}
	}
	if s.Cues[0].Hue == nil || *s.Cues[0].Hue != 120 {
		t.Errorf("first cue hue = %v", s.Cues[0].Hue)
	}
	if s.Cues[1].Hue != nil {
		t.Errorf("second cue hue = %v, want random", *s.Cues[1].Hue)
	}
	if s.Cues[2].Text != "2026" {
		t.Errorf("last cue text = %q", s.Cues[2].Text)
	}
	if s.Duration() != 5*time.Second {
		t.Errorf("duration = %v", s.Duration())
	}
}

func TestParseRejectsBadCues(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"burst without position", "cues:\n  - at: 1s\n"},
		{"position out of range", "cues:\n  - at: 1s\n    x: 1.5\n    y: 0.5\n"},
		{"negative time", "cues:\n  - at: -1s\n    text: HI\n"},
		{"blank word", "words: [\"  \"]\n"},
		{"not yaml", "cues: [[["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "show.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Cues) != 3 {
		t.Errorf("got %d cues", len(s.Cues))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestShippedShow(t *testing.T) {
	s, err := Load("../shows/newyear.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.Loop || len(s.Words) != 4 || s.Words[1] != "AÑO" {
		t.Errorf("show = %+v", s)
	}
	if d := s.Duration(); d != 12*time.Second {
		t.Errorf("Duration = %v, want 12s", d)
	}
}
