// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// LogLevel is the minimum severity requested on the command line or in the
// environment. The zero value means "not set".
//
// LogLevel implements encoding.TextUnmarshaler for the env layer and
// pflag.Value for the flag layer.
type LogLevel string

const (
	LevelTrace LogLevel = "trace"
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

var zerologLevels = map[LogLevel]zerolog.Level{
	LevelTrace: zerolog.TraceLevel,
	LevelDebug: zerolog.DebugLevel,
	LevelInfo:  zerolog.InfoLevel,
	LevelWarn:  zerolog.WarnLevel,
	LevelError: zerolog.ErrorLevel,
}

// ParseLogLevel converts s into a LogLevel. Only the exact lower-case
// level names are accepted.
func ParseLogLevel(s string) (LogLevel, error) {
	level := LogLevel(s)
	if _, ok := zerologLevels[level]; !ok {
		return "", fmt.Errorf("%w %q: must be one of trace, debug, info, warn, error", ErrInvalidLogLevel, s)
	}
	return level, nil
}

// IsSet reports whether a level was chosen.
func (l LogLevel) IsSet() bool {
	return l != ""
}

// ZerologLevel maps l to the zerolog level, or returns fallback when l is unset.
func (l LogLevel) ZerologLevel(fallback zerolog.Level) zerolog.Level {
	if level, ok := zerologLevels[l]; ok {
		return level
	}
	return fallback
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *LogLevel) UnmarshalText(text []byte) error {
	level, err := ParseLogLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// Set implements pflag.Value.
func (l *LogLevel) Set(s string) error {
	return l.UnmarshalText([]byte(s))
}

// String implements pflag.Value.
func (l *LogLevel) String() string {
	return string(*l)
}

// Type implements pflag.Value.
func (l *LogLevel) Type() string {
	return "level"
}
