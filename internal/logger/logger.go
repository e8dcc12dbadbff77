// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and context
// helpers used across go-share-cache.
//
// The server writes JSON to stdout. The client owns the terminal (the TUI
// draws there), so its logger writes to a size-rotated file instead.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger embeds zerolog.Logger so the full zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// ClientLogFile describes the rotated log file of the client.
type ClientLogFile struct {
	// Path is the log file. Empty means "client.log" next to the executable.
	Path string

	// MaxSizeMB is the size at which the file is rotated.
	MaxSizeMB int

	// MaxBackups is how many rotated files are kept.
	MaxBackups int
}

// NewLogger builds a JSON stdout logger tagged with role. Every entry carries
// a timestamp and the calling function name in the "func" field.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger builds a logger that writes to a lumberjack-rotated file.
func NewClientLogger(role string, file ClientLogFile) *Logger {
	path := file.Path
	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), "client.log")
	}
	if file.MaxSizeMB <= 0 {
		file.MaxSizeMB = 10
	}
	if file.MaxBackups <= 0 {
		file.MaxBackups = 3
	}

	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    file.MaxSizeMB,
		MaxBackups: file.MaxBackups,
		MaxAge:     28,
		Compress:   true,
	}

	return newLogger(writer, role)
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can be enriched without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithComponent returns a child logger tagged with a "component" field.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}

// FromRequest returns the request-scoped logger attached by middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx, or zerolog's default one.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
