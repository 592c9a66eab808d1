// Package sim is the fireworks simulation core.
//
// A World owns every live rocket and particle and advances them one tick at a
// time. Rockets climb toward a target and, on arrival, explode into either a
// uniform radial burst or a set of text particles whose destinations come from
// a GlyphSampler. Text particles gather onto their glyph points, hold, then
// disperse and fade like burst particles.
//
// All per-tick constants are tuned for a nominal 60 Hz frame. The World is
// single-threaded: callers launch rockets and call Tick and Draw from the same
// goroutine.
package sim
