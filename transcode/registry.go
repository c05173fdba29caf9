package transcode

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/RyanBlaney/sonido-envelope/logging"
)

// Decoder turns an encoded stream into mono AudioData.
type Decoder interface {
	Decode(r io.Reader) (*AudioData, error)
}

// Registry maps format keys ("wav", "mp3", ...) and file extensions to
// decoders. It is safe for concurrent use.
type Registry struct {
	mtx        sync.RWMutex
	codecs     map[string]Decoder
	extensions map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		codecs:     make(map[string]Decoder),
		extensions: make(map[string]string),
	}
}

// DefaultRegistry returns a registry with every built-in decoder.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("wav", WavDecoder{}, ".wav", ".wave")
	r.Register("aiff", AiffDecoder{}, ".aif", ".aiff")
	r.Register("mp3", MP3Decoder{}, ".mp3")
	r.Register("ogg", VorbisDecoder{}, ".ogg", ".oga")
	return r
}

// Register adds d under format and binds the given file extensions to it.
func (r *Registry) Register(format string, d Decoder, extensions ...string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
	for _, ext := range extensions {
		r.extensions[strings.ToLower(ext)] = format
	}
}

// Get returns the decoder registered under format.
func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[format]
	return d, ok
}

// FormatForPath returns the format key bound to the extension of path,
// compared case-insensitively.
func (r *Registry) FormatForPath(path string) (string, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	format, ok := r.extensions[strings.ToLower(filepath.Ext(path))]
	return format, ok
}

// Formats lists the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	formats := make([]string, 0, len(r.codecs))
	for f := range r.codecs {
		formats = append(formats, f)
	}
	slices.Sort(formats)
	return formats
}

// DecodeFile decodes the file at path with the decoder bound to its
// extension.
func (r *Registry) DecodeFile(path string) (*AudioData, error) {
	logger := logging.WithFields(logging.Fields{
		"component": "audio_decoder",
		"function":  "DecodeFile",
		"filename":  path,
	})

	format, ok := r.FormatForPath(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	d, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	audio, err := d.Decode(f)
	if err != nil {
		logger.Debug("Decode failed", logging.Fields{"format": format, "error": err.Error()})
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}

	logger.Debug("Audio decoded", logging.Fields{
		"format":      audio.Format,
		"sample_rate": audio.SampleRate,
		"channels":    audio.Channels,
		"duration":    audio.Duration().String(),
	})

	return audio, nil
}

// readSeeker returns r itself when it can seek, or buffers it in memory.
func readSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}
