package common

import "math"

// FrameSequence is a time-ordered list of equal-width frames. Index [t][i]
// is spectral position i of frame t.
//
// Every transform in this package returns a newly allocated sequence and
// leaves its input untouched.
type FrameSequence [][]float64

// NewFrameSequence allocates a zeroed sequence of n frames of width w.
func NewFrameSequence(n, w int) FrameSequence {
	fs := make(FrameSequence, n)
	backing := make([]float64, n*w)
	for t := range fs {
		fs[t] = backing[t*w : (t+1)*w : (t+1)*w]
	}
	return fs
}

// Len is the number of frames.
func (fs FrameSequence) Len() int {
	return len(fs)
}

// Width is the number of spectral positions per frame, or 0 when empty.
func (fs FrameSequence) Width() int {
	if len(fs) == 0 {
		return 0
	}
	return len(fs[0])
}

// Column copies spectral position i across all frames.
func (fs FrameSequence) Column(i int) []float64 {
	col := make([]float64, len(fs))
	for t, frame := range fs {
		col[t] = frame[i]
	}
	return col
}

// SetColumn writes col into spectral position i.
func (fs FrameSequence) SetColumn(i int, col []float64) {
	for t, frame := range fs {
		frame[i] = col[t]
	}
}

// Clone returns a deep copy. The copy of an empty sequence is empty, not nil.
func (fs FrameSequence) Clone() FrameSequence {
	out := NewFrameSequence(len(fs), fs.Width())
	for t, frame := range fs {
		copy(out[t], frame)
	}
	return out
}

// IsRectangular reports whether every frame has the same width.
func (fs FrameSequence) IsRectangular() bool {
	w := fs.Width()
	for _, frame := range fs {
		if len(frame) != w {
			return false
		}
	}
	return true
}

// IsFinite reports whether every value in fs is neither NaN nor infinite.
func (fs FrameSequence) IsFinite() bool {
	for _, frame := range fs {
		for _, v := range frame {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
