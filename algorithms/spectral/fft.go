package spectral

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// FFT wraps mjibson/go-dsp for real-input transforms.
type FFT struct{}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Compute returns the full complex spectrum of x.
func (f *FFT) Compute(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	// go-dsp handles non-power-of-2 sizes with Bluestein
	return fft.FFTReal(x)
}

// Magnitudes returns |X[k]| for k in [0, len(x)/2], the non-redundant half
// of a real-input spectrum including DC and Nyquist.
func (f *FFT) Magnitudes(x []float64) []float64 {
	if len(x) == 0 {
		return []float64{}
	}

	spectrum := f.Compute(x)
	bins := len(x)/2 + 1

	mags := make([]float64, bins)
	for k := range bins {
		mags[k] = cmplx.Abs(spectrum[k])
	}

	return mags
}
