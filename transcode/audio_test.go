package transcode

import "testing"

func TestDownmix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       []float64
		channels int
		want     []float64
	}{
		{"mono copy", []float64{1, 2, 3}, 1, []float64{1, 2, 3}},
		{"stereo", []float64{1, 3, -2, 2}, 2, []float64{2, 0}},
		{"quad", []float64{1, 2, 3, 6}, 4, []float64{3}},
		{"partial frame dropped", []float64{1, 3, 5}, 2, []float64{2}},
		{"empty", nil, 2, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Downmix(tt.in, tt.channels)
			if len(got) != len(tt.want) {
				t.Fatalf("Downmix() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Downmix()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDownmix_MonoDoesNotAlias(t *testing.T) {
	t.Parallel()

	in := []float64{1, 2}
	out := Downmix(in, 1)
	out[0] = 9
	if in[0] != 1 {
		t.Error("Downmix(mono) returned its input")
	}
}

func TestAudioData_Duration(t *testing.T) {
	t.Parallel()

	a := &AudioData{PCM: make([]float64, 22050), SampleRate: 44100}
	if got := a.Duration().Seconds(); got != 0.5 {
		t.Errorf("Duration() = %vs, want 0.5s", got)
	}
}
