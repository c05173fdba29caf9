package transcode

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
)

// VorbisDecoder decodes Ogg Vorbis files. Samples are floats in [-1, 1].
type VorbisDecoder struct{}

func (VorbisDecoder) Decode(r io.Reader) (*AudioData, error) {
	samples, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading ogg vorbis stream: %w", err)
	}
	if format.Channels <= 0 {
		return nil, ErrNoChannels
	}

	interleaved := make([]float64, len(samples))
	for i, v := range samples {
		interleaved[i] = float64(v)
	}

	return &AudioData{
		PCM:        Downmix(interleaved, format.Channels),
		SampleRate: format.SampleRate,
		Channels:   format.Channels,
		Format:     "ogg",
	}, nil
}
