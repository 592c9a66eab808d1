package render

import (
	"math"

	"github.com/lixenwraith/fireworks/sim"
)

// Canvas is a grid of colored dots implementing sim.Surface
// One dot covers Scale world units on each axis
type Canvas struct {
	dots   []RGB
	width  int
	height int
	scale  float64
}

// NewCanvas creates a black canvas of width x height dots
func NewCanvas(width, height int, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	c := &Canvas{scale: scale}
	c.Resize(width, height)
	return c
}

// Resize adjusts dimensions, reallocates only if capacity insufficient, and clears
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(c.dots) < size {
		c.dots = make([]RGB, size)
	} else {
		c.dots = c.dots[:size]
		clear(c.dots)
	}
	c.width = width
	c.height = height
}

// Size returns dimensions in dots
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Scale returns world units per dot
func (c *Canvas) Scale() float64 {
	return c.scale
}

// WorldSize returns the canvas extent in world units
func (c *Canvas) WorldSize() (width, height float64) {
	return float64(c.width) * c.scale, float64(c.height) * c.scale
}

// At returns the dot at (x, y), black outside bounds
func (c *Canvas) At(x, y int) RGB {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return RGBBlack
	}
	return c.dots[y*c.width+x]
}

// Fade steps every dot toward col, repeated fades leave decaying trails that settle on col
func (c *Canvas) Fade(col sim.Color, alpha float64) {
	bg := FromColor(col)
	for i := range c.dots {
		c.dots[i] = Toward(c.dots[i], bg, alpha)
	}
}

// Fill rasterizes an ellipse with source-over alpha, plus an optional screen-blended halo
// Shapes smaller than a dot still mark the dot under their center
func (c *Canvas) Fill(s sim.Shape) {
	col := FromColor(s.Color)
	cx, cy := s.Center.X/c.scale, s.Center.Y/c.scale

	if s.Glow > 0 && s.GlowAlpha > 0 {
		r := (math.Max(s.RX, s.RY) + s.Glow) / c.scale
		c.span(cx, cy, r, r, func(i int, d float64) {
			c.dots[i] = Screen(c.dots[i], Scale(col, 1-d), s.GlowAlpha*s.Alpha)
		})
	}

	rx, ry := s.RX/c.scale, s.RY/c.scale
	painted := c.span(cx, cy, rx, ry, func(i int, _ float64) {
		c.dots[i] = Blend(c.dots[i], col, s.Alpha)
	})
	if !painted {
		x, y := int(math.Floor(cx)), int(math.Floor(cy))
		if x >= 0 && x < c.width && y >= 0 && y < c.height {
			i := y*c.width + x
			c.dots[i] = Blend(c.dots[i], col, s.Alpha)
		}
	}
}

// span calls fn for every in-bounds dot whose center lies inside the ellipse
// fn receives the dot index and normalized distance in [0, 1], returns whether any dot was visited
func (c *Canvas) span(cx, cy, rx, ry float64, fn func(i int, d float64)) bool {
	if rx <= 0 || ry <= 0 {
		return false
	}
	minX := max(int(math.Floor(cx-rx)), 0)
	maxX := min(int(math.Ceil(cx+rx)), c.width-1)
	minY := max(int(math.Floor(cy-ry)), 0)
	maxY := min(int(math.Ceil(cy+ry)), c.height-1)

	visited := false
	for y := minY; y <= maxY; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		row := y * c.width
		for x := minX; x <= maxX; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			d2 := dx*dx + dy*dy
			if d2 > 1 {
				continue
			}
			fn(row+x, math.Sqrt(d2))
			visited = true
		}
	}
	return visited
}
