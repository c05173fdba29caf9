package catalog

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/RyanBlaney/sonido-envelope/envelope"
	"github.com/RyanBlaney/sonido-envelope/transcode"
)

func wavBytes(sampleRate int, samples []int16) []byte {
	buf := new(bytes.Buffer)
	dataSize := uint32(len(samples) * 2)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*2))
	binary.Write(buf, binary.LittleEndian, uint16(2))
	binary.Write(buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func ids(sounds []envelope.Sound) []string {
	out := make([]string, len(sounds))
	for i, s := range sounds {
		out[i] = s.ID
	}
	return out
}

func TestIdentifier(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Kick.wav":              "Kick",
		"/tmp/sounds/HiHat.WAV": "HiHat",
		"crash.final.wav":       "crash.final",
		"noext":                 "noext",
	}
	for in, want := range tests {
		if got := Identifier(in); got != want {
			t.Errorf("Identifier(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestScan_FiltersAndOrders(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	wav := wavBytes(8000, []int16{1, 2, 3, 4})
	writeFile(t, dir, "Snare.wav", wav)
	writeFile(t, dir, "Clap.WAV", wav)
	writeFile(t, dir, "Kick.wav", wav)
	writeFile(t, dir, "notes.txt", []byte("hello"))
	writeFile(t, dir, "Bass.mp3", []byte("not used"))
	writeFile(t, dir, envelope.DefaultOutputName, []byte("{}"))
	if err := os.Mkdir(filepath.Join(dir, "Loops.wav"), 0o755); err != nil {
		t.Fatal(err)
	}

	sounds, err := Scan(dir, nil, nil, nil)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	want := []string{"Clap", "Kick", "Snare"}
	got := ids(sounds)
	if len(got) != len(want) {
		t.Fatalf("Scan() ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Scan() ids = %v, want %v", got, want)
			break
		}
	}

	w, err := sounds[1].Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if w.SampleRate != 8000 || len(w.Samples) != 4 || w.Samples[3] != 4 {
		t.Errorf("Load() = %+v", w)
	}
}

func TestScan_DuplicateIdentifiers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "Kick.wav", wavBytes(8000, []int16{1, 2}))
	writeFile(t, dir, "Kick.wave", wavBytes(8000, []int16{1, 2, 3}))
	writeFile(t, dir, "Kick.mp3", []byte("mp3"))

	sounds, err := Scan(dir, nil, []string{"wav"}, nil)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(sounds) != 1 {
		t.Fatalf("Scan() ids = %v, want one Kick", ids(sounds))
	}

	// Kick.wav sorts before Kick.wave and is the one kept.
	w, err := sounds[0].Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(w.Samples) != 2 {
		t.Errorf("Load() samples = %d, want 2", len(w.Samples))
	}
}

func TestScan_CorruptFileFailsOnLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "Broken.wav", bytes.Repeat([]byte{0xFF}, 64))

	sounds, err := Scan(dir, nil, nil, nil)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	_, err = sounds[0].Load()
	if !errors.Is(err, envelope.ErrInvalidWaveform) || !errors.Is(err, transcode.ErrNotWavFile) {
		t.Errorf("Load() error = %v, want ErrInvalidWaveform wrapping ErrNotWavFile", err)
	}
}

func TestScan_FollowsSymlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	elsewhere := t.TempDir()

	target := filepath.Join(elsewhere, "source.wav")
	writeFile(t, elsewhere, "source.wav", wavBytes(8000, []int16{1, 2, 3}))
	if err := os.Mkdir(filepath.Join(elsewhere, "folder"), 0o755); err != nil {
		t.Fatal(err)
	}

	links := map[string]string{
		"Linked.wav":   target,
		"Dangling.wav": filepath.Join(elsewhere, "missing.wav"),
		"Folder.wav":   filepath.Join(elsewhere, "folder"),
	}
	for name, to := range links {
		if err := os.Symlink(to, filepath.Join(dir, name)); err != nil {
			t.Skipf("symlinks unavailable: %v", err)
		}
	}

	sounds, err := Scan(dir, nil, nil, nil)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if got := ids(sounds); len(got) != 1 || got[0] != "Linked" {
		t.Fatalf("Scan() ids = %v, want [Linked]", got)
	}

	w, err := sounds[0].Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(w.Samples) != 3 {
		t.Errorf("Load() samples = %d, want 3", len(w.Samples))
	}
}

func TestScan_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Scan(filepath.Join(t.TempDir(), "missing"), nil, nil, nil); err == nil {
		t.Error("Scan(missing dir) error = nil")
	}
	if _, err := Scan(t.TempDir(), nil, []string{"flac"}, nil); !errors.Is(err, transcode.ErrUnsupportedFormat) {
		t.Errorf("Scan(flac) error = %v, want ErrUnsupportedFormat", err)
	}
}
