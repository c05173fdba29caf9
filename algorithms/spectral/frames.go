package spectral

import (
	"fmt"

	"github.com/RyanBlaney/sonido-envelope/algorithms/windowing"
)

// FrameExtractor slices a signal into overlapping tapered windows and keeps
// one band of each window's magnitude spectrum.
type FrameExtractor struct {
	frameLength int
	hopLength   int
	band        BandRange
	window      windowing.Window
	fft         *FFT
}

// NewFrameExtractor creates an extractor. frameLength must be even and
// positive, hopLength in (0, frameLength], and band within
// [0, frameLength/2]. An empty window type selects the periodic Hann window.
func NewFrameExtractor(frameLength, hopLength int, band BandRange, windowType windowing.Type) (*FrameExtractor, error) {
	if frameLength <= 0 || frameLength%2 != 0 {
		return nil, fmt.Errorf("frame length must be positive and even, got %d", frameLength)
	}
	if hopLength <= 0 || hopLength > frameLength {
		return nil, fmt.Errorf("hop length must be in (0, %d], got %d", frameLength, hopLength)
	}
	if band.StartBin < 0 || band.EndBin < band.StartBin || band.EndBin > frameLength/2 {
		return nil, fmt.Errorf("band [%d, %d] outside spectrum [0, %d]", band.StartBin, band.EndBin, frameLength/2)
	}

	if windowType == "" {
		windowType = windowing.TypeHann
	}
	window, err := windowing.New(windowType, frameLength)
	if err != nil {
		return nil, err
	}

	return &FrameExtractor{
		frameLength: frameLength,
		hopLength:   hopLength,
		band:        band,
		window:      window,
		fft:         NewFFT(),
	}, nil
}

// FrameCount returns how many complete windows fit in n samples.
// A trailing partial window is not counted.
func (e *FrameExtractor) FrameCount(n int) int {
	if n < e.frameLength {
		return 0
	}
	return (n-e.frameLength)/e.hopLength + 1
}

// Band returns the retained bin range.
func (e *FrameExtractor) Band() BandRange {
	return e.band
}

// Extract returns one band-limited magnitude frame per complete window, in
// temporal order. A signal shorter than one frame yields an empty slice.
func (e *FrameExtractor) Extract(signal []float64) [][]float64 {
	numFrames := e.FrameCount(len(signal))
	frames := make([][]float64, 0, numFrames)

	buf := make([]float64, e.frameLength)
	for start := 0; start+e.frameLength <= len(signal); start += e.hopLength {
		copy(buf, signal[start:start+e.frameLength])

		// lengths always match here
		_ = e.window.ApplyInPlace(buf)

		mags := e.fft.Magnitudes(buf)

		focused := make([]float64, e.band.Width())
		copy(focused, mags[e.band.StartBin:e.band.EndBin+1])
		frames = append(frames, focused)
	}

	return frames
}
