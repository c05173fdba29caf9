package envelope

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RyanBlaney/sonido-envelope/algorithms/common"
)

func TestResult_MarshalJSONKeepsOrder(t *testing.T) {
	t.Parallel()

	r := &Result{
		Entries: []Entry{
			{ID: "Snare", Frames: common.FrameSequence{{0, 0.5}, {1, 0.25}}},
			{ID: "Kick", Frames: common.FrameSequence{{1}}},
			{ID: "Clap", Frames: nil},
			{ID: "HiHat", Frames: common.FrameSequence{}},
		},
		Failures: []Failure{{ID: "Broken", Err: ErrInvalidWaveform}},
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"Snare":[[0,0.5],[1,0.25]],"Kick":[[1]],"Clap":[],"HiHat":[]}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestResult_MarshalJSONEmpty(t *testing.T) {
	t.Parallel()

	data, err := (&Result{}).MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("MarshalJSON() = %s, want {}", data)
	}
}

func TestResult_MarshalJSONRejectsNaN(t *testing.T) {
	t.Parallel()

	r := &Result{Entries: []Entry{{ID: "bad", Frames: common.FrameSequence{{zero() / zero()}}}}}
	if _, err := r.MarshalJSON(); err == nil || !strings.Contains(err.Error(), `"bad"`) {
		t.Errorf("MarshalJSON() error = %v, want error naming the sound", err)
	}
}

func zero() float64 { return 0 }

func TestFailure_Unwrap(t *testing.T) {
	t.Parallel()

	f := Failure{ID: "x", Err: ErrBandOutOfRange}
	if !errors.Is(f, ErrBandOutOfRange) {
		t.Error("Failure does not unwrap to its error")
	}
	if f.Error() != "x: band exceeds nyquist frequency" {
		t.Errorf("Error() = %q", f.Error())
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := OutputPath(dir)
	if filepath.Base(path) != DefaultOutputName {
		t.Fatalf("OutputPath() = %s", path)
	}

	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := &Result{Entries: []Entry{{ID: "Kick", Frames: common.FrameSequence{{0.5}}}}}
	if err := WriteFile(path, r); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"Kick":[[0.5]]}` {
		t.Errorf("file content = %s", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the output file", len(entries))
	}
}
