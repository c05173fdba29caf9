package envelope

import (
	"errors"

	"github.com/RyanBlaney/sonido-envelope/algorithms/common"
)

var (
	// ErrInvalidWaveform marks a sound whose audio could not be read or
	// decoded into a usable waveform.
	ErrInvalidWaveform = errors.New("invalid waveform")

	// ErrBandOutOfRange marks a sound whose Nyquist frequency is below the
	// configured band's upper edge.
	ErrBandOutOfRange = errors.New("band exceeds nyquist frequency")

	// ErrInsufficientData marks a band too narrow for cubic resampling.
	ErrInsufficientData = common.ErrInsufficientData
)
