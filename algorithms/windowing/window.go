package windowing

import (
	"fmt"
	"strings"
)

// Type names a window shape.
type Type string

const (
	TypeHann           Type = "hann"
	TypeHamming        Type = "hamming"
	TypeBlackman       Type = "blackman"
	TypeBlackmanHarris Type = "blackman_harris"
	TypeRectangular    Type = "rectangular"
)

// Window tapers a frame before spectral analysis.
type Window interface {
	ApplyInPlace(signal []float64) error
	Coefficients() []float64
	Size() int
	Type() Type
}

// Types lists every supported window shape.
func Types() []Type {
	return []Type{TypeHann, TypeHamming, TypeBlackman, TypeBlackmanHarris, TypeRectangular}
}

// ParseType matches name case-insensitively against the supported shapes.
func ParseType(name string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Types() {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown window type %q", name)
}

// New creates the periodic form of the window t with the given size. t is
// matched as by ParseType.
func New(t Type, size int) (Window, error) {
	if size <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %d", size)
	}

	t, err := ParseType(string(t))
	if err != nil {
		return nil, err
	}

	switch t {
	case TypeHann:
		return NewPeriodicHann(size), nil
	case TypeHamming:
		return NewHamming(size, false), nil
	case TypeBlackman:
		return NewBlackman(size, false), nil
	case TypeBlackmanHarris:
		return NewBlackmanHarris(size, false), nil
	}
	// TypeRectangular
	return NewRectangular(size), nil
}
