package common

import "gonum.org/v1/gonum/floats"

// MinMaxNormalize maps data onto [0, 1]. A constant signal has no range; its
// values are shifted by the minimum only, which leaves them at 0.
func MinMaxNormalize(data []float64) []float64 {
	normalized := make([]float64, len(data))
	if len(data) == 0 {
		return normalized
	}

	lo := floats.Min(data)
	denom := floats.Max(data) - lo
	if denom == 0 {
		denom = 1
	}

	for i, v := range data {
		normalized[i] = (v - lo) / denom
	}

	return normalized
}

// NormalizeColumns min-max normalizes each spectral position of fs
// independently across all frames.
func NormalizeColumns(fs FrameSequence) FrameSequence {
	out := NewFrameSequence(fs.Len(), fs.Width())
	for i := range fs.Width() {
		out.SetColumn(i, MinMaxNormalize(fs.Column(i)))
	}
	return out
}
