package transcode

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
)

// AiffDecoder decodes integer PCM AIFF files.
type AiffDecoder struct{}

func (AiffDecoder) Decode(r io.Reader) (*AudioData, error) {
	rs, err := readSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	interleaved, format, err := readAllPCM(dec)
	if err != nil {
		return nil, fmt.Errorf("reading aiff samples: %w", err)
	}

	return &AudioData{
		PCM:        Downmix(interleaved, format.NumChannels),
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
		BitDepth:   int(dec.BitDepth),
		Format:     "aiff",
	}, nil
}
