package windowing

import (
	"math"
	"testing"
)

func TestHann_PeriodicCoefficients(t *testing.T) {
	t.Parallel()

	h := NewPeriodicHann(4)
	want := []float64{0, 0.5, 1, 0.5}
	got := h.Coefficients()

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("coefficient[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestHann_SymmetricEndpoints(t *testing.T) {
	t.Parallel()

	h := NewHann(5, true)
	got := h.Coefficients()

	if got[0] != 0 || math.Abs(got[4]) > 1e-12 {
		t.Errorf("symmetric endpoints = %v, %v, want 0, 0", got[0], got[4])
	}
	if math.Abs(got[2]-1) > 1e-12 {
		t.Errorf("symmetric centre = %v, want 1", got[2])
	}
}

func TestHann_PeriodicDiffersFromSymmetric(t *testing.T) {
	t.Parallel()

	periodic := NewPeriodicHann(1024).Coefficients()
	symmetric := NewHann(1024, true).Coefficients()

	// The periodic form never returns to zero at the last sample.
	if periodic[1023] == 0 {
		t.Error("periodic window ends at zero")
	}
	if math.Abs(symmetric[1023]) > 1e-12 {
		t.Errorf("symmetric window ends at %v, want 0", symmetric[1023])
	}
}

func TestHann_ApplyInPlace(t *testing.T) {
	t.Parallel()

	h := NewPeriodicHann(4)
	signal := []float64{2, 2, 2, 2}

	if err := h.ApplyInPlace(signal); err != nil {
		t.Fatalf("ApplyInPlace() error = %v", err)
	}

	want := []float64{0, 1, 2, 1}
	for i := range want {
		if math.Abs(signal[i]-want[i]) > 1e-12 {
			t.Errorf("signal[%d] = %v, want %v", i, signal[i], want[i])
		}
	}
}

func TestHann_SizeMismatch(t *testing.T) {
	t.Parallel()

	h := NewPeriodicHann(8)
	if err := h.ApplyInPlace(make([]float64, 4)); err == nil {
		t.Error("ApplyInPlace() with short signal: want error")
	}
	if err := h.ApplyInPlace(make([]float64, 9)); err == nil {
		t.Error("ApplyInPlace() with wrong length: want error")
	}
}
