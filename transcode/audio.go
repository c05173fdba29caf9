package transcode

import "time"

// AudioData is a decoded, mono-downmixed signal.
//
// Integer PCM keeps the container's integer scale (a 16-bit sample of
// 0x7fff decodes to 32767). Float formats keep their float values.
type AudioData struct {
	PCM        []float64 `json:"-"`
	SampleRate int       `json:"sample_rate"`
	// Channels is the channel count of the source before downmixing.
	Channels int    `json:"channels"`
	BitDepth int    `json:"bit_depth,omitempty"`
	Format   string `json:"format"`
}

// Duration is the length of the decoded signal.
func (a *AudioData) Duration() time.Duration {
	if a.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(a.PCM)) / float64(a.SampleRate) * float64(time.Second))
}

// Downmix averages interleaved frames of the given channel count into one
// channel. A trailing partial frame is dropped.
func Downmix(interleaved []float64, channels int) []float64 {
	if channels <= 1 {
		out := make([]float64, len(interleaved))
		copy(out, interleaved)
		return out
	}

	frames := len(interleaved) / channels
	out := make([]float64, frames)
	for f := range frames {
		sum := 0.0
		base := f * channels
		for c := range channels {
			sum += interleaved[base+c]
		}
		out[f] = sum / float64(channels)
	}

	return out
}
