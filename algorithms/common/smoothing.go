package common

// DefaultSmoothingWindow is the moving-average length used by the envelope
// pipeline.
const DefaultSmoothingWindow = 7

// ConvolveSame convolves x with kernel and returns len(x) samples centred on
// the full convolution, matching the usual "same" mode.
//
// Terms that fall outside x contribute zero, so outputs near either end are
// pulled toward zero. Callers must pass len(x) >= len(kernel).
func ConvolveSame(x, kernel []float64) []float64 {
	n := len(x)
	m := len(kernel)
	out := make([]float64, n)
	if n == 0 || m == 0 {
		return out
	}

	// out[i] = full[i+offset], full[k] = sum_j kernel[j]*x[k-j]
	offset := (m - 1) / 2
	for i := range n {
		k := i + offset
		sum := 0.0
		for j, w := range kernel {
			idx := k - j
			if idx < 0 || idx >= n {
				continue
			}
			sum += w * x[idx]
		}
		out[i] = sum
	}

	return out
}

// BoxKernel returns a uniform kernel of the given size whose taps sum to 1.
func BoxKernel(size int) []float64 {
	kernel := make([]float64, size)
	for i := range kernel {
		kernel[i] = 1 / float64(size)
	}
	return kernel
}

// MovingAverage smooths each spectral position of fs along the time axis
// with a centred box filter of windowSize frames.
//
// Sequences shorter than the window are returned as an unmodified copy.
// Longer sequences keep their length, and the frames at either end are
// averaged against zero padding.
func MovingAverage(fs FrameSequence, windowSize int) FrameSequence {
	if windowSize <= 1 || fs.Len() < windowSize {
		return fs.Clone()
	}

	kernel := BoxKernel(windowSize)
	out := NewFrameSequence(fs.Len(), fs.Width())
	for i := range fs.Width() {
		out.SetColumn(i, ConvolveSame(fs.Column(i), kernel))
	}

	return out
}
