package transcode

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/riff"
	"github.com/go-audio/wav"
)

const (
	wavFormatPCM        = 1
	wavFormatFloat      = 3
	wavFormatExtensible = 0xFFFE
)

// WavDecoder decodes integer PCM WAV files (8, 16, 24 or 32 bit) and IEEE
// float WAV files (32 or 64 bit), including WAVE_FORMAT_EXTENSIBLE headers.
type WavDecoder struct{}

func (WavDecoder) Decode(r io.Reader) (*AudioData, error) {
	rs, err := readSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	encoding := dec.WavAudioFormat
	if encoding == wavFormatExtensible {
		if encoding, err = wavSubFormat(rs); err != nil {
			return nil, fmt.Errorf("reading wav extensible header: %w", err)
		}
	}

	var interleaved []float64
	switch encoding {
	case wavFormatPCM:
		interleaved, _, err = readAllPCM(dec)
	case wavFormatFloat:
		interleaved, err = readAllFloat(dec)
	default:
		return nil, fmt.Errorf("%w: wav format tag %d", ErrUnsupportedEncoding, encoding)
	}
	if err != nil {
		return nil, fmt.Errorf("reading wav samples: %w", err)
	}

	channels := int(dec.NumChans)
	return &AudioData{
		PCM:        Downmix(interleaved, channels),
		SampleRate: int(dec.SampleRate),
		Channels:   channels,
		BitDepth:   int(dec.BitDepth),
		Format:     "wav",
	}, nil
}

// readAllFloat reads the data chunk of an IEEE float WAV as little-endian
// float32 or float64 samples. A trailing partial sample is dropped.
func readAllFloat(dec *wav.Decoder) ([]float64, error) {
	if dec.NumChans < 1 {
		return nil, ErrNoChannels
	}

	var (
		size   int
		decode func([]byte) float64
	)
	switch dec.BitDepth {
	case 32:
		size = 4
		decode = func(b []byte) float64 {
			return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
		}
	case 64:
		size = 8
		decode = func(b []byte) float64 {
			return math.Float64frombits(binary.LittleEndian.Uint64(b))
		}
	default:
		return nil, fmt.Errorf("%w: %d-bit float", ErrUnsupportedEncoding, dec.BitDepth)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, err
	}
	if dec.PCMChunk == nil {
		return nil, wav.ErrPCMChunkNotFound
	}

	raw, err := io.ReadAll(dec.PCMChunk.R)
	if err != nil {
		return nil, err
	}

	samples := make([]float64, len(raw)/size)
	for i := range samples {
		samples[i] = decode(raw[i*size:])
	}
	return samples, nil
}

// wavSubFormat returns the format tag held in the first two bytes of the
// SubFormat GUID of an extensible fmt chunk. The read position of rs is
// restored afterwards.
func wavSubFormat(rs io.ReadSeeker) (uint16, error) {
	pos, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	defer rs.Seek(pos, io.SeekStart)

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	p := riff.New(rs)
	if _, _, err := p.IDnSize(); err != nil {
		return 0, err
	}
	var form [4]byte
	if _, err := io.ReadFull(rs, form[:]); err != nil {
		return 0, err
	}

	for {
		chunk, err := p.NextChunk()
		if err != nil {
			return 0, err
		}
		if chunk.ID != riff.FmtID {
			if _, err := io.CopyN(io.Discard, rs, int64(chunk.Size)); err != nil {
				return 0, err
			}
			continue
		}

		// cbSize, wValidBitsPerSample, dwChannelMask, then the GUID
		body := make([]byte, chunk.Size)
		if _, err := io.ReadFull(rs, body); err != nil {
			return 0, err
		}
		if len(body) < 26 {
			return 0, fmt.Errorf("%w: extensible fmt chunk of %d bytes", ErrUnsupportedEncoding, len(body))
		}
		return binary.LittleEndian.Uint16(body[24:26]), nil
	}
}
