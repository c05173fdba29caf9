package envelope

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/RyanBlaney/sonido-envelope/algorithms/common"
	"github.com/RyanBlaney/sonido-envelope/logging"
)

// Sound is one input of a batch: an identifier and a lazy loader for its
// waveform. Loaders run on worker goroutines.
type Sound struct {
	ID   string
	Load func() (Waveform, error)
}

// Batch runs an Analyzer over many sounds on a bounded pool of workers.
type Batch struct {
	analyzer *Analyzer
	workers  int
	logger   logging.Logger
}

// NewBatch creates a batch driver. workers <= 0 picks a count from the
// number of CPUs.
func NewBatch(analyzer *Analyzer, workers int, logger logging.Logger) *Batch {
	if logger == nil {
		logger = &logging.NoOpLogger{}
	}
	return &Batch{
		analyzer: analyzer,
		workers:  workers,
		logger: logger.WithFields(logging.Fields{
			"component": "envelope_batch",
		}),
	}
}

type outcome struct {
	frames common.FrameSequence
	err    error
	done   bool
}

// Run analyses every sound and returns the gathered Result.
//
// Sounds are independent: a sound that fails to load or analyse is recorded
// in Result.Failures and the rest carry on. Entries and failures are listed
// in the order of sounds, whatever order the workers finish in. Once ctx is
// cancelled no further sounds are started, and those left over are recorded
// as failures with the context error.
func (b *Batch) Run(ctx context.Context, sounds []Sound) *Result {
	start := time.Now()
	outcomes := make([]outcome, len(sounds))

	numWorkers := b.workerCount(len(sounds))
	jobs := make(chan int, len(sounds))

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					outcomes[idx] = outcome{err: err, done: true}
					continue
				}
				frames, err := b.process(sounds[idx])
				outcomes[idx] = outcome{frames: frames, err: err, done: true}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for idx := range sounds {
			select {
			case <-ctx.Done():
				return
			case jobs <- idx:
			}
		}
	}()

	wg.Wait()

	result := &Result{}
	for idx, sound := range sounds {
		out := outcomes[idx]
		if !out.done {
			out.err = ctx.Err()
		}
		if out.err != nil {
			b.logger.Error(out.err, "Sound failed", logging.Fields{"id": sound.ID})
			result.Failures = append(result.Failures, Failure{ID: sound.ID, Err: out.err})
			continue
		}
		result.Entries = append(result.Entries, Entry{ID: sound.ID, Frames: out.frames})
	}

	b.logger.Info("Batch complete", logging.Fields{
		"sounds":   len(sounds),
		"analyzed": len(result.Entries),
		"failed":   len(result.Failures),
		"workers":  numWorkers,
		"elapsed":  time.Since(start).String(),
	})

	return result
}

// process loads and analyses one sound. A panic inside the pipeline is
// turned into that sound's error.
func (b *Batch) process(sound Sound) (frames common.FrameSequence, err error) {
	defer func() {
		if r := recover(); r != nil {
			frames = nil
			err = fmt.Errorf("analysis panicked: %v", r)
		}
	}()

	logger := b.logger.WithFields(logging.Fields{"id": sound.ID})
	logger.Info("Analyzing sound")

	if sound.Load == nil {
		return nil, fmt.Errorf("%w: no loader", ErrInvalidWaveform)
	}

	w, err := sound.Load()
	if err != nil {
		return nil, err
	}

	frames, err = b.analyzer.Analyze(w)
	if err != nil {
		return nil, err
	}

	s := common.Summarize(frames)
	logger.Debug("Sound analyzed", logging.Fields{
		"duration": w.Duration().String(),
		"frames":   s.Frames,
		"width":    s.Width,
		"mean":     s.Mean,
		"std_dev":  s.StdDev,
	})

	return frames, nil
}

// workerCount never exceeds the number of sounds.
func (b *Batch) workerCount(numSounds int) int {
	n := b.workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return max(1, min(n, numSounds))
}
