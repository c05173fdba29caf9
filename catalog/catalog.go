// Package catalog finds the sound files of a directory and wraps each one as
// an envelope.Sound.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/RyanBlaney/sonido-envelope/envelope"
	"github.com/RyanBlaney/sonido-envelope/logging"
	"github.com/RyanBlaney/sonido-envelope/transcode"
)

// DefaultFormats are the formats scanned when none are given.
var DefaultFormats = []string{"wav"}

// Identifier derives a sound identifier from a file name by dropping the
// directory and the last extension.
func Identifier(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Scan lists the files in dir (not recursively) whose extension maps to one
// of formats in registry. Symlinks are followed; directories and dangling
// links are skipped. Sounds come back in file name order.
//
// When two files share an identifier, such as Kick.wav and Kick.mp3, the
// first in name order wins and the rest are logged and skipped. Decoding is
// deferred to each Sound's Load.
func Scan(dir string, registry *transcode.Registry, formats []string, logger logging.Logger) ([]envelope.Sound, error) {
	if registry == nil {
		registry = transcode.DefaultRegistry()
	}
	if len(formats) == 0 {
		formats = DefaultFormats
	}
	if logger == nil {
		logger = &logging.NoOpLogger{}
	}
	logger = logger.WithFields(logging.Fields{
		"component": "catalog",
		"dir":       dir,
	})

	for _, f := range formats {
		if _, ok := registry.Get(f); !ok {
			return nil, fmt.Errorf("%w: %s", transcode.ErrUnsupportedFormat, f)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading sound directory: %w", err)
	}

	seen := make(map[string]string)
	var sounds []envelope.Sound
	for _, entry := range entries {
		name := entry.Name()
		format, ok := registry.FormatForPath(name)
		if !ok || !slices.Contains(formats, format) {
			continue
		}
		if !isRegularFile(dir, entry, logger) {
			continue
		}

		id := Identifier(name)
		if prev, dup := seen[id]; dup {
			logger.Warn("Duplicate sound identifier, skipping file", logging.Fields{
				"id":   id,
				"file": name,
				"kept": prev,
			})
			continue
		}
		seen[id] = name

		sounds = append(sounds, envelope.Sound{
			ID:   id,
			Load: loader(registry, filepath.Join(dir, name)),
		})
	}

	logger.Debug("Directory scanned", logging.Fields{
		"files":   len(entries),
		"sounds":  len(sounds),
		"formats": strings.Join(formats, ","),
	})

	return sounds, nil
}

// isRegularFile reports whether entry is a regular file or a symlink that
// resolves to one. Dangling links are logged and skipped.
func isRegularFile(dir string, entry os.DirEntry, logger logging.Logger) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.Type().IsRegular()
	}

	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		logger.Warn("Skipping unreadable symlink", logging.Fields{
			"file":  entry.Name(),
			"error": err.Error(),
		})
		return false
	}
	return info.Mode().IsRegular()
}

func loader(registry *transcode.Registry, path string) func() (envelope.Waveform, error) {
	return func() (envelope.Waveform, error) {
		audio, err := registry.DecodeFile(path)
		if err != nil {
			return envelope.Waveform{}, fmt.Errorf("%w: %w", envelope.ErrInvalidWaveform, err)
		}
		return envelope.Waveform{
			SampleRate: audio.SampleRate,
			Samples:    audio.PCM,
		}, nil
	}
}
