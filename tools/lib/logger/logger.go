// Copyright 2018 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logger provides methods for logging with different levels.
package logger

import (
	"context"
	"fmt"
	"io"
	goLog "log"
	"os"

	"go.fuchsia.dev/fuchsia/tools/lib/color"
)

type globalLoggerKeyType struct{}

// WithLogger returns the context with its logger set as the provided Logger.
func WithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, globalLoggerKeyType{}, logger)
}

// LoggerFromContext returns the context logger if configured, otherwise nil.
func LoggerFromContext(ctx context.Context) *Logger {
	if v, ok := ctx.Value(globalLoggerKeyType{}).(*Logger); ok && v != nil {
		return v
	}
	return nil
}

// Logger writes leveled messages. Errors go to a separate writer so that a
// tool's stdout can stay machine-readable.
type Logger struct {
	LoggerLevel   LogLevel
	goLogger      *goLog.Logger
	goErrorLogger *goLog.Logger
	color         color.Color
	prefix        string
}

// LogLevel represents different levels for logging depending on the amount of detail wanted.
type LogLevel int

const (
	NoLogLevel LogLevel = iota
	ErrorLevel
	WarningLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

var levelToName = map[LogLevel]string{
	NoLogLevel:   "no",
	ErrorLevel:   "error",
	WarningLevel: "warning",
	InfoLevel:    "info",
	DebugLevel:   "debug",
	TraceLevel:   "trace",
}

// String returns the name of the LogLevel, or "" if it has none.
func (l *LogLevel) String() string {
	return levelToName[*l]
}

// Set sets the LogLevel from its name.
func (l *LogLevel) Set(s string) error {
	for level, name := range levelToName {
		if name == s {
			*l = level
			return nil
		}
	}
	return fmt.Errorf("%s is not a valid level", s)
}

// Lshortfile is copied from Go log so callers don't need to also import log.
const Lshortfile = goLog.Lshortfile

// callDepth is the number of frames between a package-level logging call and
// the caller's frame.
const callDepth = 3

// NewLogger creates a logger writing at or below loggerLevel. Nil writers
// default to os.Stdout and os.Stderr. The prefix precedes every line.
func NewLogger(loggerLevel LogLevel, color color.Color, outWriter, errWriter io.Writer, prefix string) *Logger {
	if outWriter == nil {
		outWriter = os.Stdout
	}
	if errWriter == nil {
		errWriter = os.Stderr
	}
	return &Logger{
		LoggerLevel:   loggerLevel,
		goLogger:      goLog.New(outWriter, "", 0),
		goErrorLogger: goLog.New(errWriter, "", 0),
		color:         color,
		prefix:        prefix,
	}
}

func (l *Logger) SetFlags(flags int) {
	l.goLogger.SetFlags(flags)
	l.goErrorLogger.SetFlags(flags)
}

func (l *Logger) logf(depth int, level LogLevel, format string, a ...interface{}) {
	if l.LoggerLevel < level {
		return
	}
	var tag string
	out := l.goLogger
	switch level {
	case ErrorLevel:
		tag, out = l.color.Red("ERROR: "), l.goErrorLogger
	case WarningLevel:
		tag = l.color.Yellow("WARN: ")
	case InfoLevel:
	case DebugLevel:
		tag = l.color.Cyan("DEBUG: ")
	case TraceLevel:
		tag = l.color.Blue("TRACE: ")
	default:
		panic(fmt.Sprintf("Undefined loglevel: %v, log message: %s", level, fmt.Sprintf(format, a...)))
	}
	out.Output(depth+1, l.prefix+tag+fmt.Sprintf(format, a...))
}

func (l *Logger) Errorf(format string, a ...interface{}) {
	l.logf(callDepth-1, ErrorLevel, format, a...)
}

func (l *Logger) Warningf(format string, a ...interface{}) {
	l.logf(callDepth-1, WarningLevel, format, a...)
}

func (l *Logger) Infof(format string, a ...interface{}) {
	l.logf(callDepth-1, InfoLevel, format, a...)
}

func (l *Logger) Debugf(format string, a ...interface{}) {
	l.logf(callDepth-1, DebugLevel, format, a...)
}

func (l *Logger) Tracef(format string, a ...interface{}) {
	l.logf(callDepth-1, TraceLevel, format, a...)
}

// logf logs through the context's logger, falling back to the standard
// library's default logger when the context has none.
func logf(ctx context.Context, level LogLevel, format string, a ...interface{}) {
	if l := LoggerFromContext(ctx); l != nil {
		l.logf(callDepth, level, format, a...)
		return
	}
	goLog.Output(callDepth, fmt.Sprintf(format, a...))
}

func Errorf(ctx context.Context, format string, a ...interface{}) {
	logf(ctx, ErrorLevel, format, a...)
}

func Warningf(ctx context.Context, format string, a ...interface{}) {
	logf(ctx, WarningLevel, format, a...)
}

func Infof(ctx context.Context, format string, a ...interface{}) {
	logf(ctx, InfoLevel, format, a...)
}

func Debugf(ctx context.Context, format string, a ...interface{}) {
	logf(ctx, DebugLevel, format, a...)
}

func Tracef(ctx context.Context, format string, a ...interface{}) {
	logf(ctx, TraceLevel, format, a...)
}
