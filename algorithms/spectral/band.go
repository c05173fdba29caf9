package spectral

import "math"

// BandRange is an inclusive range of spectral bin indices.
type BandRange struct {
	StartBin int `json:"start_bin"`
	EndBin   int `json:"end_bin"`
}

// Width is the number of bins in the range.
func (b BandRange) Width() int {
	return b.EndBin - b.StartBin + 1
}

// BinHz returns the frequency spacing of a frameLength-point real spectrum.
func BinHz(sampleRate, frameLength int) float64 {
	nyquist := float64(sampleRate) / 2
	return nyquist / float64(frameLength/2)
}

// FrequencyBandRange maps [lowHz, highHz] onto bin indices of a
// frameLength-point spectrum. Both edges are truncated, not rounded.
//
// The caller must keep highHz at or below sampleRate/2; otherwise EndBin
// exceeds frameLength/2.
func FrequencyBandRange(sampleRate, frameLength int, lowHz, highHz float64) BandRange {
	binHz := BinHz(sampleRate, frameLength)

	return BandRange{
		StartBin: int(math.Floor(lowHz / binHz)),
		EndBin:   int(math.Floor(highHz / binHz)),
	}
}
