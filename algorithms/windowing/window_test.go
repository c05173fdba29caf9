package windowing

import (
	"math"
	"testing"
)

func TestNew_AllTypes(t *testing.T) {
	t.Parallel()

	for _, typ := range Types() {
		w, err := New(typ, 16)
		if err != nil {
			t.Fatalf("New(%s) error = %v", typ, err)
		}
		if w.Size() != 16 || w.Type() != typ {
			t.Errorf("New(%s) = size %d type %s", typ, w.Size(), w.Type())
		}
	}
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	if _, err := New(TypeHann, 0); err == nil {
		t.Error("New(size 0) error = nil")
	}
	if _, err := New("kaiser", 8); err == nil {
		t.Error("New(kaiser) error = nil")
	}
}

func TestParseType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"hann", TypeHann, false},
		{" Hamming ", TypeHamming, false},
		{"BLACKMAN_HARRIS", TypeBlackmanHarris, false},
		{"triangle", "", true},
	}

	for _, tt := range tests {
		got, err := ParseType(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseType(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestCosineSum_HannEquivalence(t *testing.T) {
	t.Parallel()

	hann := NewPeriodicHann(32).Coefficients()
	sum := NewCosineSum(TypeHann, 32, false, 0.5, 0.5).Coefficients()
	for i := range hann {
		if math.Abs(hann[i]-sum[i]) > 1e-12 {
			t.Fatalf("coefficient[%d] = %v, want %v", i, sum[i], hann[i])
		}
	}
}

func TestCosineSum_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		window *CosineSum
		first  float64
		centre float64
	}{
		{"hamming", NewHamming(8, false), 0.08, 1},
		{"blackman", NewBlackman(8, false), 0, 1},
		{"blackman harris", NewBlackmanHarris(8, false), 0.00006, 1},
		{"rectangular", NewRectangular(8), 1, 1},
	}

	for _, tt := range tests {
		c := tt.window.Coefficients()
		if math.Abs(c[0]-tt.first) > 1e-9 {
			t.Errorf("%s: coefficient[0] = %v, want %v", tt.name, c[0], tt.first)
		}
		if math.Abs(c[4]-tt.centre) > 1e-9 {
			t.Errorf("%s: coefficient[4] = %v, want %v", tt.name, c[4], tt.centre)
		}
	}
}

func TestCosineSum_ApplyInPlace(t *testing.T) {
	t.Parallel()

	w := NewHamming(4, false)
	signal := []float64{2, 2, 2, 2}
	if err := w.ApplyInPlace(signal); err != nil {
		t.Fatalf("ApplyInPlace() error = %v", err)
	}
	if math.Abs(signal[2]-2) > 1e-12 {
		t.Errorf("signal[2] = %v, want 2", signal[2])
	}
	if err := w.ApplyInPlace(make([]float64, 3)); err == nil {
		t.Error("ApplyInPlace() with wrong length: want error")
	}
}
