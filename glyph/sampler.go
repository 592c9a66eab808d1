package glyph

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/vmath"
)

// Options controls rasterization and sampling
type Options struct {
	// FontData is a TrueType/OpenType file, nil selects Go Bold
	FontData []byte

	Size      float64 // Face size in pixels at 72 DPI
	Height    int     // Offscreen bitmap height
	Margin    int     // Extra width beyond the measured advance
	Baseline  int     // Baseline row inside the bitmap
	Stride    int     // Sampling grid spacing, >1 bounds particle count
	Threshold uint8   // Coverage a sample must exceed
}

// DefaultOptions returns the reference raster parameters
func DefaultOptions() Options {
	return Options{
		Size:      parameter.GlyphFontSize,
		Height:    parameter.GlyphCanvasHeight,
		Margin:    parameter.GlyphCanvasMargin,
		Baseline:  parameter.GlyphBaseline,
		Stride:    parameter.GlyphStride,
		Threshold: parameter.GlyphAlphaThreshold,
	}
}

// Sampler rasterizes strings and samples them into destination points
type Sampler struct {
	opts Options
	face font.Face
}

// New parses the font and builds a face for the configured size
func New(opts Options) (*Sampler, error) {
	if opts.Stride < 1 {
		return nil, fmt.Errorf("glyph stride must be positive, got %d", opts.Stride)
	}
	if opts.Height < 1 {
		return nil, fmt.Errorf("glyph canvas height must be positive, got %d", opts.Height)
	}
	if opts.Size <= 0 {
		return nil, fmt.Errorf("glyph font size must be positive, got %v", opts.Size)
	}

	data := opts.FontData
	if data == nil {
		data = gobold.TTF
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    opts.Size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}

	return &Sampler{opts: opts, face: face}, nil
}

// Close releases the face
func (s *Sampler) Close() error {
	return s.face.Close()
}

// Options returns the options the sampler was built with
func (s *Sampler) Options() Options {
	return s.opts
}

// prepare normalizes text, returns empty for blank payloads
func prepare(text string) string {
	text = norm.NFC.String(text)
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return text
}

// Width returns the offscreen bitmap width for text
func (s *Sampler) Width(text string) int {
	adv := font.MeasureString(s.face, prepare(text))
	return adv.Ceil() + s.opts.Margin
}

// Rasterize draws text horizontally centered on the baseline into a fresh alpha bitmap
// Returns nil for blank text
func (s *Sampler) Rasterize(text string) *image.Alpha {
	text = prepare(text)
	if text == "" {
		return nil
	}

	adv := font.MeasureString(s.face, text)
	w := adv.Ceil() + s.opts.Margin
	img := image.NewAlpha(image.Rect(0, 0, w, s.opts.Height))

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: s.face,
		Dot: fixed.Point26_6{
			X: (fixed.I(w) - adv) / 2,
			Y: fixed.I(s.opts.Baseline),
		},
	}
	d.DrawString(text)

	return img
}

// Origin returns the world position of the bitmap's top-left corner for a block of width w centered on (cx, cy)
func (s *Sampler) Origin(w int, cx, cy float64) vmath.Vec {
	return vmath.V(cx-float64(w)/2, cy-float64(s.opts.Height)/2)
}

// Sample returns destination points for text anchored at (cx, cy) in row-major grid order
func (s *Sampler) Sample(text string, cx, cy float64) []vmath.Vec {
	img := s.Rasterize(text)
	if img == nil {
		return nil
	}
	return s.collect(img, s.Origin(img.Rect.Dx(), cx, cy), nil)
}

// collect appends world points for every above-threshold grid sample of img
func (s *Sampler) collect(img *image.Alpha, origin vmath.Vec, dst []vmath.Vec) []vmath.Vec {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	step := s.opts.Stride
	for y := 0; y < h; y += step {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x += step {
			if row[x] > s.opts.Threshold {
				dst = append(dst, vmath.V(origin.X+float64(x), origin.Y+float64(y)))
			}
		}
	}
	return dst
}
