package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/RyanBlaney/sonido-envelope/algorithms/common"
)

// DefaultOutputName is the file written next to the analysed sounds.
const DefaultOutputName = "precomputed_frequencies.json"

// Entry is one analysed sound.
type Entry struct {
	ID     string
	Frames common.FrameSequence
}

// Failure is one sound that could not be analysed.
type Failure struct {
	ID  string
	Err error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.ID, f.Err)
}

func (f Failure) Unwrap() error {
	return f.Err
}

// Result maps sound identifiers to their envelopes, in input order.
type Result struct {
	Entries  []Entry
	Failures []Failure
}

// Get returns the envelope of id.
func (r *Result) Get(id string) (common.FrameSequence, bool) {
	for _, e := range r.Entries {
		if e.ID == id {
			return e.Frames, true
		}
	}
	return nil, false
}

// IDs lists the analysed identifiers in order.
func (r *Result) IDs() []string {
	ids := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		ids[i] = e.ID
	}
	return ids
}

// FailedIDs lists the identifiers that failed, in order.
func (r *Result) FailedIDs() []string {
	ids := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		ids[i] = f.ID
	}
	return ids
}

// MarshalJSON encodes the result as a JSON object from identifier to an
// array of frames, keeping entry order. Failures are not encoded.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, e := range r.Entries {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(e.ID)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		frames := e.Frames
		if frames == nil {
			frames = common.FrameSequence{}
		}
		value, err := json.Marshal([][]float64(frames))
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", e.ID, err)
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// OutputPath returns the default output location for a sound directory.
func OutputPath(dir string) string {
	return filepath.Join(dir, DefaultOutputName)
}

// WriteFile writes r as JSON to path, replacing any existing file only once
// the new content is complete.
func WriteFile(path string, r *Result) error {
	data, err := r.MarshalJSON()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".envelope-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming to %s: %w", path, err)
	}

	return nil
}
