package envelope

import (
	"fmt"
	"math"
	"time"
)

// Waveform is a mono PCM signal. Multi-channel audio is averaged to one
// channel before it becomes a Waveform.
type Waveform struct {
	SampleRate int
	Samples    []float64
}

// Duration is the length of the signal in time.
func (w Waveform) Duration() time.Duration {
	if w.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(w.Samples)) / float64(w.SampleRate) * float64(time.Second))
}

// Nyquist is half the sample rate.
func (w Waveform) Nyquist() float64 {
	return float64(w.SampleRate) / 2
}

// Validate reports ErrInvalidWaveform for a non-positive sample rate or a
// NaN or infinite sample.
func (w Waveform) Validate() error {
	if w.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidWaveform, w.SampleRate)
	}
	for i, v := range w.Samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: sample %d is %v", ErrInvalidWaveform, i, v)
		}
	}
	return nil
}
