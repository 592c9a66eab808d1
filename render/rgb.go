package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// FromColor quantizes a float color, out of gamut channels are clamped
func FromColor(c colorful.Color) RGB {
	return RGB{
		R: clamp(c.R*255.0 + 0.5),
		G: clamp(c.G*255.0 + 0.5),
		B: clamp(c.B*255.0 + 0.5),
	}
}

// Blend optimizes alpha blending
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	inv := 1.0 - alpha

	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Toward blends c toward target, moving every differing channel by at least one step
// Repeated calls always reach target exactly
func Toward(c, target RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return target
	}
	if alpha <= 0.0 {
		return c
	}
	return RGB{
		R: towardChannel(c.R, target.R, alpha),
		G: towardChannel(c.G, target.G, alpha),
		B: towardChannel(c.B, target.B, alpha),
	}
}

func towardChannel(c, target uint8, alpha float64) uint8 {
	v := float64(c) + (float64(target)-float64(c))*alpha
	switch {
	case target > c:
		return uint8(math.Ceil(v))
	case target < c:
		return uint8(math.Floor(v))
	}
	return c
}

// fastDiv255 approximates x / 255 using integer math
// Formula: (x + (x >> 8) + 1) >> 8
func fastDiv255(x int) int {
	return (x + (x >> 8) + 1) >> 8
}

// Screen blend: 1 - (1-Dst)*(1-Src) with alpha blending
func Screen(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}

	screened := RGB{
		R: uint8(255 - fastDiv255((255-int(c.R))*(255-int(src.R)))),
		G: uint8(255 - fastDiv255((255-int(c.G))*(255-int(src.G)))),
		B: uint8(255 - fastDiv255((255-int(c.B))*(255-int(src.B)))),
	}

	if alpha >= 1.0 {
		return screened
	}

	return Blend(c, screened, alpha)
}

// Scale multiplies all channels by factor
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}
