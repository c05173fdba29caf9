package windowing

import (
	"fmt"
	"math"
)

// CosineSum is a window of the form
//
//	w[i] = a0 - a1*cos(x) + a2*cos(2x) - a3*cos(3x) + ...
//
// with x = 2*pi*i/N (periodic) or 2*pi*i/(N-1) (symmetric).
type CosineSum struct {
	typ          Type
	size         int
	symmetric    bool
	coefficients []float64
}

// NewCosineSum builds a cosine-sum window from its term weights a0, a1, ...
func NewCosineSum(typ Type, size int, symmetric bool, terms ...float64) *CosineSum {
	c := &CosineSum{
		typ:          typ,
		size:         size,
		symmetric:    symmetric,
		coefficients: make([]float64, size),
	}

	denominator := float64(size)
	if symmetric {
		denominator = float64(size - 1)
	}

	for i := range size {
		if size == 1 {
			c.coefficients[i] = 1
			break
		}

		arg := 2 * math.Pi * float64(i) / denominator
		sign := 1.0
		for k, a := range terms {
			c.coefficients[i] += sign * a * math.Cos(float64(k)*arg)
			sign = -sign
		}
	}

	return c
}

// NewHamming creates a Hamming window.
func NewHamming(size int, symmetric bool) *CosineSum {
	return NewCosineSum(TypeHamming, size, symmetric, 0.54, 0.46)
}

// NewBlackman creates a classic three-term Blackman window.
func NewBlackman(size int, symmetric bool) *CosineSum {
	return NewCosineSum(TypeBlackman, size, symmetric, 0.42, 0.5, 0.08)
}

// NewBlackmanHarris creates a four-term Blackman-Harris window.
func NewBlackmanHarris(size int, symmetric bool) *CosineSum {
	return NewCosineSum(TypeBlackmanHarris, size, symmetric, 0.35875, 0.48829, 0.14128, 0.01168)
}

// NewRectangular creates a window that leaves the signal untouched.
func NewRectangular(size int) *CosineSum {
	return NewCosineSum(TypeRectangular, size, false, 1)
}

func (c *CosineSum) ApplyInPlace(signal []float64) error {
	if len(signal) != c.size {
		return fmt.Errorf("signal length (%d) doesn't match window size (%d)", len(signal), c.size)
	}

	for i, w := range c.coefficients {
		signal[i] *= w
	}

	return nil
}

func (c *CosineSum) Coefficients() []float64 {
	coeffs := make([]float64, len(c.coefficients))
	copy(coeffs, c.coefficients)
	return coeffs
}

func (c *CosineSum) Size() int {
	return c.size
}

func (c *CosineSum) Type() Type {
	return c.typ
}
