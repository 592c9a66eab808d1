package sim

import (
	"github.com/lixenwraith/fireworks/vmath"
)

// Shape is one filled ellipse draw command
type Shape struct {
	Center vmath.Vec
	RX, RY float64
	Color  Color
	Alpha  float64
	// Halo around the shape, a zero radius draws none
	Glow      float64
	GlowAlpha float64
}

// Surface is a 2D drawing target
type Surface interface {
	// Fade blends the whole surface toward c by alpha, leaving trails
	Fade(c Color, alpha float64)
	// Fill draws one shape with per-call alpha blending
	Fill(s Shape)
}

// Shapes appends the draw commands for every live entity to dst without changing any entity
func (w *World) Shapes(dst []Shape) []Shape {
	for i := range w.rockets {
		r := &w.rockets[i]
		s := Shape{
			Center: r.Pos,
			RX:     w.cfg.RocketRadiusX,
			RY:     w.cfg.RocketRadiusY,
			Color:  r.Color,
			Alpha:  1,
		}
		if r.Kind == RocketText {
			s.Glow = w.cfg.GlowRadius
			s.GlowAlpha = w.cfg.GlowStrength
		}
		dst = append(dst, s)
	}

	for i := range w.particles {
		p := &w.particles[i]
		size := w.cfg.BurstSize
		if p.Kind == ParticleText {
			size = w.cfg.TextSize
		}
		dst = append(dst, Shape{
			Center: p.Pos,
			RX:     size,
			RY:     size,
			Color:  p.Color,
			Alpha:  vmath.Clamp(p.Alpha, 0, 1),
		})
	}
	return dst
}

// Draw fades the surface for trails and fills every live entity
func (w *World) Draw(s Surface) {
	s.Fade(w.cfg.Background, w.cfg.TrailAlpha)
	w.shapes = w.Shapes(w.shapes[:0])
	for _, sh := range w.shapes {
		s.Fill(sh)
	}
}
