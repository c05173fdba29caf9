package common

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the value distribution of a FrameSequence.
type Summary struct {
	Frames int     `json:"frames"`
	Width  int     `json:"width"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize computes statistics over every value in fs.
func Summarize(fs FrameSequence) Summary {
	s := Summary{Frames: fs.Len(), Width: fs.Width()}
	if s.Frames == 0 || s.Width == 0 {
		return s
	}

	flat := make([]float64, 0, s.Frames*s.Width)
	for _, frame := range fs {
		flat = append(flat, frame...)
	}

	s.Mean, s.StdDev = stat.PopMeanStdDev(flat, nil)
	s.Min = floats.Min(flat)
	s.Max = floats.Max(flat)

	return s
}
