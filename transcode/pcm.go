package transcode

import (
	"io"

	goaudio "github.com/go-audio/audio"
)

// pcmReader is the part of the go-audio wav and aiff decoders used here.
type pcmReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

const pcmChunk = 8192

// readAllPCM drains dec and returns its interleaved integer samples as
// float64 along with the stream format.
func readAllPCM(dec pcmReader) ([]float64, *goaudio.Format, error) {
	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, nil, ErrNoChannels
	}

	buf := &goaudio.IntBuffer{
		Data:   make([]int, pcmChunk*format.NumChannels),
		Format: format,
	}

	var samples []float64
	for {
		n, err := dec.PCMBuffer(buf)
		for _, v := range buf.Data[:n] {
			samples = append(samples, float64(v))
		}
		if err == io.EOF || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
	}

	return samples, format, nil
}
