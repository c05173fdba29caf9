// Command sonido-envelope precomputes the frequency envelopes of every sound
// in a directory and writes them to a single JSON document.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/RyanBlaney/sonido-envelope/catalog"
	"github.com/RyanBlaney/sonido-envelope/envelope"
	"github.com/RyanBlaney/sonido-envelope/envelope/config"
	"github.com/RyanBlaney/sonido-envelope/logging"
	"github.com/RyanBlaney/sonido-envelope/transcode"
)

const defaultSoundDir = "sounds/sample"

type options struct {
	dir       string
	out       string
	config    string
	formats   string
	workers   int
	logLevel  string
	logFormat string
	color     bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("sonido-envelope", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.dir, "dir", defaultSoundDir, "directory of sound files")
	fs.StringVar(&opts.out, "out", "", "output file (default <dir>/"+envelope.DefaultOutputName+")")
	fs.StringVar(&opts.config, "config", "", "JSON file of analysis parameters")
	fs.StringVar(&opts.formats, "formats", strings.Join(catalog.DefaultFormats, ","), "comma separated formats to scan")
	fs.IntVar(&opts.workers, "workers", -1, "concurrent analyses (0 = one per CPU, -1 = from config)")
	fs.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	fs.StringVar(&opts.logFormat, "log-format", "text", "text or json")
	fs.BoolVar(&opts.color, "color", false, "colour warnings and errors in text logs")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if opts.out == "" {
		opts.out = envelope.OutputPath(opts.dir)
	}
	return opts, nil
}

func newLogger(opts *options, stdout, stderr io.Writer) (logging.Logger, error) {
	level, ok := logging.ParseLevel(opts.logLevel)
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", opts.logLevel)
	}

	switch opts.logFormat {
	case "text":
		l := logging.NewWriterLogger(stdout, stderr)
		l.SetLevel(level)
		l.SetColors(opts.color)
		return l, nil
	case "json":
		return logging.NewZapLogger(stderr, level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.logFormat)
	}
}

func splitFormats(s string) []string {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}

// run returns 0 when the output file was written, even if some sounds
// failed. Failed sounds are logged and left out of the output.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger, err := newLogger(opts, stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if z, ok := logger.(*logging.ZapLogger); ok {
		defer z.Sync()
	}
	logging.SetGlobalLogger(logger)

	cfg := config.Default()
	if opts.config != "" {
		if cfg, err = config.Load(opts.config); err != nil {
			logger.Error(err, "Failed to load config", logging.Fields{"path": opts.config})
			return 1
		}
	}
	if opts.workers >= 0 {
		cfg.Workers = opts.workers
	}

	analyzer, err := envelope.NewAnalyzer(cfg, logger)
	if err != nil {
		logger.Error(err, "Invalid analysis parameters")
		return 1
	}

	sounds, err := catalog.Scan(opts.dir, transcode.DefaultRegistry(), splitFormats(opts.formats), logger)
	if err != nil {
		logger.Error(err, "Failed to scan sound directory", logging.Fields{"dir": opts.dir})
		return 1
	}
	logger.Info("Analyzing sounds", logging.Fields{
		"dir":    opts.dir,
		"sounds": len(sounds),
	})

	result := envelope.NewBatch(analyzer, cfg.Workers, logger).Run(ctx, sounds)
	if len(result.Failures) > 0 {
		logger.Warn("Some sounds were skipped", logging.Fields{
			"ids": strings.Join(result.FailedIDs(), ","),
		})
	}

	if err := envelope.WriteFile(opts.out, result); err != nil {
		logger.Error(err, "Failed to write output", logging.Fields{"path": opts.out})
		return 1
	}

	logger.Info("Done", logging.Fields{
		"path":    opts.out,
		"entries": len(result.Entries),
		"failed":  len(result.Failures),
	})
	return 0
}
