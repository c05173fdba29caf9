package transcode

import "errors"

var (
	ErrUnsupportedFormat   = errors.New("unsupported audio format")
	ErrUnsupportedEncoding = errors.New("unsupported sample encoding")
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrNotAiffFile         = errors.New("not an AIFF file")
	ErrNoChannels          = errors.New("audio has no channels")
)
