// SPDX-License-Identifier: MIT

// Package logging builds the structured logger shared by the cscgen commands.
//
// Records go to a console writer (stderr by default) and, when a file name is
// set, to a size-rotated log file.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ErrUnknownLevel is returned by ParseLevel for unrecognized names.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Rotation defaults for the log file.
const (
	DefaultMaxSize    = 10 // megabytes
	DefaultMaxBackups = 3
	DefaultMaxAge     = 28 // days
)

// Config describes where and how to log.
type Config struct {
	Level      string
	Format     Format
	Console    bool   // write to the console writer
	Filename   string // rotated log file; empty disables file output
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
	UTC        bool
}

// DefaultConfig logs INFO and above as text to the console only.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     FormatText,
		Console:    true,
		MaxSize:    DefaultMaxSize,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAge,
	}
}

// ParseLevel maps debug, info, warn (warning) and error, in any case, to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("%q: %w", name, ErrUnknownLevel)
}

// New builds a logger from cfg. console receives records when cfg.Console is
// set. The returned closer releases the log file and must be called on exit.
func New(cfg Config, console io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var writers []io.Writer
	var closer io.Closer = nopCloser{}
	if cfg.Console && console != nil {
		writers = append(writers, console)
	}
	if cfg.Filename != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
			LocalTime:  !cfg.UTC,
		}
		writers = append(writers, lj)
		closer = lj
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		w = io.Discard
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch cfg.Format {
	case FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	case FormatText, "":
		h = slog.NewTextHandler(w, opts)
	default:
		return nil, nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	return slog.New(h), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
