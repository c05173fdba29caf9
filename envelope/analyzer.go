package envelope

import (
	"fmt"

	"github.com/RyanBlaney/sonido-envelope/algorithms/common"
	"github.com/RyanBlaney/sonido-envelope/algorithms/spectral"
	"github.com/RyanBlaney/sonido-envelope/envelope/config"
	"github.com/RyanBlaney/sonido-envelope/logging"
)

// Analyzer computes the envelope FrameSequence of one Waveform. It keeps no
// per-call state and is safe for concurrent use.
type Analyzer struct {
	config config.Config
	logger logging.Logger
}

// NewAnalyzer validates cfg and returns an Analyzer. A nil cfg means
// config.Default(); a nil logger discards output.
func NewAnalyzer(cfg *config.Config, logger logging.Logger) (*Analyzer, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = &logging.NoOpLogger{}
	}

	return &Analyzer{
		config: *cfg,
		logger: logger.WithFields(logging.Fields{
			"component": "envelope_analyzer",
		}),
	}, nil
}

// Config returns a copy of the analysis parameters.
func (a *Analyzer) Config() config.Config {
	return a.config
}

// Band returns the bin range analysed for a given sample rate.
func (a *Analyzer) Band(sampleRate int) spectral.BandRange {
	return spectral.FrequencyBandRange(sampleRate, a.config.FrameLength, a.config.BandLowHz, a.config.BandHighHz)
}

// Analyze runs the full pipeline on w.
//
// A waveform shorter than one analysis frame yields an empty sequence and
// no error. A band narrower than four bins fails with ErrInsufficientData.
// Non-finite samples, or samples so large the spectrum overflows, fail with
// ErrInvalidWaveform.
func (a *Analyzer) Analyze(w Waveform) (common.FrameSequence, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if a.config.BandHighHz > w.Nyquist() {
		return nil, fmt.Errorf("%w: band_high_hz %v, nyquist %v", ErrBandOutOfRange, a.config.BandHighHz, w.Nyquist())
	}

	band := a.Band(w.SampleRate)
	extractor, err := spectral.NewFrameExtractor(a.config.FrameLength, a.config.HopLength, band, a.config.Window)
	if err != nil {
		return nil, fmt.Errorf("creating frame extractor: %w", err)
	}

	raw := common.FrameSequence(extractor.Extract(w.Samples))
	if raw.Len() == 0 {
		a.logger.Warn("Waveform shorter than one frame, no envelope produced", logging.Fields{
			"samples":      len(w.Samples),
			"frame_length": a.config.FrameLength,
		})
		return common.FrameSequence{}, nil
	}

	if !raw.IsFinite() {
		return nil, fmt.Errorf("%w: samples overflow the spectrum", ErrInvalidWaveform)
	}

	a.logger.Debug("Extracted band frames", logging.Fields{
		"sample_rate": w.SampleRate,
		"start_bin":   extractor.Band().StartBin,
		"end_bin":     extractor.Band().EndBin,
		"frames":      raw.Len(),
	})

	interpolated := common.InterpolateTime(raw, a.config.InterpolationFactor)

	resampled, err := common.ResampleWidth(interpolated, a.config.ResamplePoints)
	if err != nil {
		return nil, fmt.Errorf("resampling %d-bin band: %w", band.Width(), err)
	}

	normalized := common.NormalizeColumns(resampled)
	smoothed := common.MovingAverage(normalized, a.config.SmoothingWindow)
	if !smoothed.IsFinite() {
		return nil, fmt.Errorf("%w: envelope is not finite", ErrInvalidWaveform)
	}

	a.logger.Debug("Envelope computed", logging.Fields{
		"frames": smoothed.Len(),
		"width":  smoothed.Width(),
	})

	return smoothed, nil
}
