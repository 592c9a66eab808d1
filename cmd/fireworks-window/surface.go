package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/fireworks/sim"
)

const (
	ellipseSegments = 24
	glowTextureSize = 64
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	// Sampling the inner pixel avoids edge bleeding
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	glowImage     *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)

	// radial alpha falloff for additive halos
	img := image.NewRGBA(image.Rect(0, 0, glowTextureSize, glowTextureSize))
	c := float64(glowTextureSize) / 2
	for y := 0; y < glowTextureSize; y++ {
		for x := 0; x < glowTextureSize; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c) / c
			t := math.Max(0, 1-d)
			a := uint8(255 * t * t)
			img.SetRGBA(x, y, color.RGBA{a, a, a, a})
		}
	}
	glowImage = ebiten.NewImageFromImage(img)
}

// surface adapts an ebiten image to sim.Surface
type surface struct {
	dst      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func nrgba(c sim.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(math.Max(0, math.Min(1, alpha)) * 255))}
}

func (s *surface) Fade(c sim.Color, alpha float64) {
	b := s.dst.Bounds()
	vector.DrawFilledRect(s.dst, 0, 0, float32(b.Dx()), float32(b.Dy()), nrgba(c, alpha), false)
}

func (s *surface) Fill(sh sim.Shape) {
	if sh.Glow > 0 && sh.GlowAlpha > 0 {
		s.glow(sh)
	}

	if sh.RX == sh.RY {
		vector.DrawFilledCircle(s.dst, float32(sh.Center.X), float32(sh.Center.Y), float32(sh.RX), nrgba(sh.Color, sh.Alpha), true)
		return
	}
	s.ellipse(sh)
}

// ellipse draws a triangle fan around the shape center
func (s *surface) ellipse(sh sim.Shape) {
	c := sh.Color.Clamped()
	cr, cg, cb := float32(c.R), float32(c.G), float32(c.B)
	a := float32(sh.Alpha)

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	s.vertices = append(s.vertices, ebiten.Vertex{
		DstX: float32(sh.Center.X), DstY: float32(sh.Center.Y),
		SrcX: 1, SrcY: 1,
		ColorR: cr, ColorG: cg, ColorB: cb, ColorA: a,
	})
	for i := 0; i < ellipseSegments; i++ {
		theta := 2 * math.Pi * float64(i) / ellipseSegments
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX:   float32(sh.Center.X + sh.RX*math.Cos(theta)),
			DstY:   float32(sh.Center.Y + sh.RY*math.Sin(theta)),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: a,
		})
		next := uint16(1 + (i+1)%ellipseSegments)
		s.indices = append(s.indices, 0, uint16(1+i), next)
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}

// glow adds a soft halo with additive blending
func (s *surface) glow(sh sim.Shape) {
	radius := math.Max(sh.RX, sh.RY) + sh.Glow
	scale := 2 * radius / glowTextureSize

	op := &ebiten.DrawImageOptions{Blend: ebiten.BlendLighter}
	op.GeoM.Translate(-glowTextureSize/2, -glowTextureSize/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(sh.Center.X, sh.Center.Y)
	op.ColorScale.ScaleWithColor(sh.Color.Clamped())
	op.ColorScale.ScaleAlpha(float32(sh.GlowAlpha * sh.Alpha))
	s.dst.DrawImage(glowImage, op)
}
