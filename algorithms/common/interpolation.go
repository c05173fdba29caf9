package common

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// MinSplinePoints is the number of control points a cubic spline needs.
const MinSplinePoints = 4

// ErrInsufficientData is returned when a sequence is too small for the
// requested fit.
var ErrInsufficientData = errors.New("insufficient data")

// Linspace returns n evenly spaced points on [lo, hi] with both ends included.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// InterpolateTime upsamples fs along the time axis by an integer factor.
//
// Every spectral position is linearly interpolated between neighbouring
// frames. The result has n*factor-(factor-1) frames and keeps the first and
// last frame exactly. factor <= 1 and single-frame input return a copy.
func InterpolateTime(fs FrameSequence, factor int) FrameSequence {
	n := fs.Len()
	if factor <= 1 || n <= 1 {
		return fs.Clone()
	}

	width := fs.Width()
	newN := n*factor - (factor - 1)

	xOld := Linspace(0, float64(n-1), n)
	xNew := Linspace(0, float64(n-1), newN)

	out := NewFrameSequence(newN, width)
	var pl interp.PiecewiseLinear
	for i := range width {
		// xOld is strictly increasing and n >= 2, so Fit cannot fail
		_ = pl.Fit(xOld, fs.Column(i))
		for t, x := range xNew {
			out[t][i] = pl.Predict(x)
		}
	}

	return out
}

// ResampleWidth resamples every frame of fs to numPoints spectral positions.
//
// Each frame is treated as a curve sampled at evenly spaced positions on
// [0, 1] and fitted with a not-a-knot cubic spline that passes through every
// sample. The spline is then evaluated at numPoints evenly spaced positions
// on the same interval. Frames narrower than MinSplinePoints fail with
// ErrInsufficientData.
func ResampleWidth(fs FrameSequence, numPoints int) (FrameSequence, error) {
	if fs.Len() == 0 {
		return FrameSequence{}, nil
	}
	if numPoints <= 0 {
		return nil, fmt.Errorf("resample points must be positive, got %d", numPoints)
	}
	if !fs.IsRectangular() {
		return nil, fmt.Errorf("frames have differing widths")
	}

	width := fs.Width()
	if width < MinSplinePoints {
		return nil, fmt.Errorf("cubic fit needs at least %d points per frame, got %d: %w",
			MinSplinePoints, width, ErrInsufficientData)
	}

	xOld := Linspace(0, 1, width)
	xNew := Linspace(0, 1, numPoints)

	out := NewFrameSequence(fs.Len(), numPoints)
	var spline interp.NotAKnotCubic
	for t, frame := range fs {
		if err := spline.Fit(xOld, frame); err != nil {
			return nil, fmt.Errorf("fitting frame %d: %w", t, err)
		}
		for j, x := range xNew {
			out[t][j] = spline.Predict(x)
		}
	}

	return out, nil
}
