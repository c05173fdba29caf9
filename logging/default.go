package logging

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// textSink is the output end shared by a DefaultLogger and every logger
// derived from it with WithFields or WithContext. Level and colour changes
// on any of them apply to all.
type textSink struct {
	mtx    sync.Mutex
	out    io.Writer
	errOut io.Writer

	level      atomic.Int32
	colors     atomic.Bool
	timestamps bool

	exit func(code int)
}

// DefaultLogger writes one line per entry:
//
//	2006-01-02T15:04:05Z07:00 [LEVEL] message: error key=value ...
//
// Debug and Info go to the standard stream, Warn, Error and Fatal to the
// error stream. Field keys are sorted. With colours on, Warn is yellow,
// Error red and Fatal bold red.
type DefaultLogger struct {
	sink   *textSink
	fields Fields
}

// NewDefaultLogger logs to stdout and stderr with timestamps. Colours are on
// when stderr is a terminal.
func NewDefaultLogger() *DefaultLogger {
	l := newDefaultLogger(os.Stdout, os.Stderr, true)
	l.sink.colors.Store(isTerminal(os.Stderr))
	return l
}

// NewWriterLogger logs to out and errOut without timestamps or colours.
func NewWriterLogger(out, errOut io.Writer) *DefaultLogger {
	return newDefaultLogger(out, errOut, false)
}

func newDefaultLogger(out, errOut io.Writer, timestamps bool) *DefaultLogger {
	sink := &textSink{
		out:        out,
		errOut:     errOut,
		timestamps: timestamps,
		exit:       os.Exit,
	}
	sink.level.Store(int32(InfoLevel))
	return &DefaultLogger{sink: sink, fields: Fields{}}
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// SetColors turns ANSI colouring of Warn, Error and Fatal lines on or off.
func (d *DefaultLogger) SetColors(on bool) {
	d.sink.colors.Store(on)
}

func (d *DefaultLogger) SetLevel(level Level) {
	d.sink.level.Store(int32(level))
}

func (d *DefaultLogger) enabled(level Level) bool {
	return int32(level) >= d.sink.level.Load()
}

func (d *DefaultLogger) format(level Level, err error, msg string, fields []Fields) string {
	var b strings.Builder

	if d.sink.timestamps {
		b.WriteString(time.Now().Format(time.RFC3339))
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "[%s] %s", level, msg)
	if err != nil {
		fmt.Fprintf(&b, ": %v", err)
	}

	merged := d.fields
	if len(fields) > 0 {
		merged = maps.Clone(d.fields)
		for _, f := range fields {
			maps.Copy(merged, f)
		}
	}
	for _, key := range slices.Sorted(maps.Keys(merged)) {
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(fieldValue(merged[key]))
	}

	line := b.String()
	if d.sink.colors.Load() {
		switch level {
		case WarnLevel:
			line = ColorYellow + line + ColorReset
		case ErrorLevel:
			line = ColorRed + line + ColorReset
		case FatalLevel:
			line = ColorBold + ColorRed + line + ColorReset
		}
	}
	return line
}

// fieldValue renders v, quoting it when it is empty or holds spaces,
// quotes or an equals sign.
func fieldValue(v any) string {
	s := fmt.Sprint(v)
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}

func (d *DefaultLogger) log(level Level, err error, msg string, fields []Fields) {
	if !d.enabled(level) {
		return
	}

	line := d.format(level, err, msg, fields)

	w := d.sink.out
	if level >= WarnLevel {
		w = d.sink.errOut
	}

	d.sink.mtx.Lock()
	fmt.Fprintln(w, line)
	d.sink.mtx.Unlock()

	if level == FatalLevel {
		d.sink.exit(1)
	}
}

func (d *DefaultLogger) Debug(msg string, fields ...Fields) {
	d.log(DebugLevel, nil, msg, fields)
}

func (d *DefaultLogger) Info(msg string, fields ...Fields) {
	d.log(InfoLevel, nil, msg, fields)
}

func (d *DefaultLogger) Warn(msg string, fields ...Fields) {
	d.log(WarnLevel, nil, msg, fields)
}

func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	d.log(ErrorLevel, err, msg, fields)
}

// Fatal logs and then exits the process with status 1.
func (d *DefaultLogger) Fatal(err error, msg string, fields ...Fields) {
	d.log(FatalLevel, err, msg, fields)
}

func (d *DefaultLogger) WithFields(fields Fields) Logger {
	merged := maps.Clone(d.fields)
	maps.Copy(merged, fields)
	return &DefaultLogger{sink: d.sink, fields: merged}
}

func (d *DefaultLogger) WithContext(ctx context.Context) Logger {
	if fields, ok := FieldsFromContext(ctx); ok {
		return d.WithFields(fields)
	}
	return d
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

func (n *NoOpLogger) Debug(msg string, fields ...Fields)            {}
func (n *NoOpLogger) Info(msg string, fields ...Fields)             {}
func (n *NoOpLogger) Warn(msg string, fields ...Fields)             {}
func (n *NoOpLogger) Error(err error, msg string, fields ...Fields) {}
func (n *NoOpLogger) Fatal(err error, msg string, fields ...Fields) {}
func (n *NoOpLogger) WithFields(fields Fields) Logger               { return n }
func (n *NoOpLogger) WithContext(ctx context.Context) Logger        { return n }
func (n *NoOpLogger) SetLevel(level Level)                          {}
