// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors used throughout the inferno server.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer.
package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
)

const (
	// diodeSize is the number of pending entries the non-blocking file
	// writer buffers before it starts dropping the oldest ones.
	diodeSize = 1000

	diodePollInterval = 10 * time.Millisecond
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// Options configures [NewServerLogger].
type Options struct {
	// Role is attached to every entry as the "role" field.
	Role string
	// BootID identifies the process run and is attached as "boot_id" when set.
	BootID string
	// Level is the minimum level that is emitted.
	Level zerolog.Level
	// Dir is the directory receiving the daily log files. Empty disables
	// the file sink.
	Dir string
	// Console receives human-readable output. Defaults to os.Stdout.
	Console io.Writer
}

// NewLogger constructs a console *Logger for the given role label.
//
// It is meant for the short window before the command line has been
// resolved: everything at Info and above is written to os.Stderr in JSON
// format with "role", timestamp and caller fields.
func NewLogger(role string) *Logger {
	setCallerFormat()

	logger := zerolog.New(os.Stderr).
		Level(zerolog.InfoLevel).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewServerLogger constructs the process logger described by opts.
//
// The logger is configured with:
//   - the level from opts applied both globally and on the logger;
//   - a "role" field and, when provided, a "boot_id" field;
//   - a "time" timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
//
// Entries go to a compact console writer (colored on terminals only) and,
// when opts.Dir is set, to <dir>/log.YYYY-MM-DD as JSON through a
// non-blocking writer. The returned io.Closer flushes and closes the file
// sink and must be called on exit.
func NewServerLogger(opts Options) (*Logger, io.Closer, error) {
	setCallerFormat()
	zerolog.SetGlobalLevel(opts.Level)

	console := opts.Console
	if console == nil {
		console = os.Stdout
	}

	writers := []io.Writer{
		zerolog.ConsoleWriter{Out: console, TimeFormat: time.RFC3339, NoColor: !isTerminal(console)},
	}

	var closer io.Closer = nopCloser{}
	if opts.Dir != "" {
		file, err := newDailyFile(opts.Dir, "log")
		if err != nil {
			return nil, nil, fmt.Errorf("error opening log directory: %w", err)
		}

		fileWriter := diode.NewWriter(file, diodeSize, diodePollInterval, func(missed int) {
			fmt.Fprintf(os.Stderr, "logger dropped %d messages\n", missed)
		})
		writers = append(writers, fileWriter)
		closer = fileWriter
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(opts.Level).
		With().
		Str("role", opts.Role)
	if opts.BootID != "" {
		ctx = ctx.Str("boot_id", opts.BootID)
	}
	logger := ctx.Timestamp().Caller().Logger()

	return &Logger{logger}, closer, nil
}

// isTerminal reports whether w is attached to a terminal. Colors are only
// written to terminals.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

func setCallerFormat() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
