// Package envelope turns decoded sounds into smoothed, normalized
// frequency-envelope sequences.
//
// An Analyzer runs the per-sound pipeline:
//
//	frames   := spectral band magnitudes of Hann-tapered windows
//	frames    = linear interpolation along time (factor 2)
//	frames    = cubic-spline resampling of every frame to 128 points
//	frames    = per-position min-max normalization
//	frames    = centred 7-frame moving average
//
// A Batch maps an Analyzer over many sounds in parallel and gathers the
// output into a Result whose JSON form keeps input order.
package envelope
