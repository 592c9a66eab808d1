// Package glyph converts a string into a sparse cloud of destination points.
//
// The string is rasterized with a bold TrueType face into a short-lived
// offscreen alpha bitmap, which is sampled on a fixed stride grid. Samples
// whose coverage exceeds the threshold become points, translated so the
// rendered text block is centered on the requested anchor.
//
// A Sampler holds a parsed face and is not safe for concurrent use.
package glyph
