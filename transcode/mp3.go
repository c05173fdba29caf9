package transcode

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
)

// go-mp3 always produces 16-bit little-endian stereo
const mp3Channels = 2

// MP3Decoder decodes MPEG-1/2 Layer III files.
type MP3Decoder struct{}

func (MP3Decoder) Decode(r io.Reader) (*AudioData, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("reading mp3 samples: %w", err)
	}

	interleaved := make([]float64, len(raw)/2)
	for i := range interleaved {
		interleaved[i] = float64(int16(binary.LittleEndian.Uint16(raw[2*i:])))
	}

	return &AudioData{
		PCM:        Downmix(interleaved, mp3Channels),
		SampleRate: dec.SampleRate(),
		Channels:   mp3Channels,
		BitDepth:   16,
		Format:     "mp3",
	}, nil
}
