package parameter

// Glyph raster
const (
	// GlyphFontSize is the nominal pixel size of the bold face
	GlyphFontSize = 60.0

	// GlyphCanvasHeight is the fixed offscreen bitmap height
	GlyphCanvasHeight = 100

	// GlyphCanvasMargin is added to the measured advance to get the bitmap width
	GlyphCanvasMargin = 40

	// GlyphBaseline is the baseline row the text is drawn on
	GlyphBaseline = 70

	// GlyphStride is the sampling grid spacing in bitmap pixels
	GlyphStride = 4

	// GlyphAlphaThreshold is the coverage a sample must exceed to become a destination (0-255)
	GlyphAlphaThreshold = 128
)
