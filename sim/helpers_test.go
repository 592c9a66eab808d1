package sim

import "github.com/lixenwraith/fireworks/vmath"

// fixedSampler returns the same offsets around the anchor for any non-empty text
type fixedSampler struct {
	offsets []vmath.Vec
	calls   int
}

func (s *fixedSampler) Sample(text string, cx, cy float64) []vmath.Vec {
	s.calls++
	if text == "" {
		return nil
	}
	pts := make([]vmath.Vec, len(s.offsets))
	for i, o := range s.offsets {
		pts[i] = vmath.V(cx+o.X, cy+o.Y)
	}
	return pts
}

// recordingSurface captures draw calls
type recordingSurface struct {
	fades  []float64
	shapes []Shape
}

func (s *recordingSurface) Fade(_ Color, alpha float64) {
	s.fades = append(s.fades, alpha)
}

func (s *recordingSurface) Fill(sh Shape) {
	s.shapes = append(s.shapes, sh)
}

// explosionLog records rocket lifecycle events
type explosionLog struct {
	launched []Rocket
	exploded []Rocket
	spawned  []int
}

func (l *explosionLog) RocketLaunched(r *Rocket) {
	l.launched = append(l.launched, *r)
}

func (l *explosionLog) RocketExploded(r *Rocket, n int) {
	l.exploded = append(l.exploded, *r)
	l.spawned = append(l.spawned, n)
}
