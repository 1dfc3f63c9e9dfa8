// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package internal provides logging shared by the duim packages. Log
// records are never written to stdout since stdout carries the report.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	LogQuery    = slog.Level(-1)
	LogProgress = slog.LevelInfo
	LogError    = slog.LevelError
)

var levelNames = map[slog.Leveler]string{
	LogProgress: "PROGRESS",
	LogError:    "ERROR",
	LogQuery:    "QUERY",
}

var (
	// Verbosity is the minimum level that is logged.
	Verbosity slog.Level = LogError
	// LogDir is the directory that log files are created in.
	LogDir string
	// LogStderr directs log records to stderr rather than a file.
	LogStderr bool
)

type logger struct {
	sync.Mutex
	*slog.Logger
}

var globalLogger = &logger{}

func getOrCreateLogger() *slog.Logger {
	globalLogger.Lock()
	defer globalLogger.Unlock()
	if globalLogger.Logger != nil {
		return globalLogger.Logger
	}
	if LogStderr {
		globalLogger.Logger = newLogger(os.Stderr)
		return globalLogger.Logger
	}
	dir := LogDir
	if len(dir) == 0 {
		dir = os.TempDir()
	}
	f, name, err := createNamedLogfile(dir, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log file: %v, %v\n", name, err)
		globalLogger.Logger = newLogger(io.Discard)
		return globalLogger.Logger
	}
	globalLogger.Logger = newLogger(f)
	return globalLogger.Logger
}

// Log writes a log record if level is at or above Verbosity. The log file
// is only created once the first such record is written.
func Log(ctx context.Context, level slog.Level, msg string, args ...interface{}) {
	if level < Verbosity {
		return
	}
	r := slog.NewRecord(time.Now(), level, msg, 0)
	r.Add(args...)
	_ = getOrCreateLogger().Handler().Handle(ctx, r)
}

// SetLogger overrides the logger used by Log, it is intended for tests.
func SetLogger(l *slog.Logger) {
	globalLogger.Lock()
	defer globalLogger.Unlock()
	globalLogger.Logger = l
}

var (
	pid     = os.Getpid()
	program = filepath.Base(os.Args[0])
)

// logName returns a new log file name with start time t, and
// the name for the symlink to it.
func logName(t time.Time) (name, link string) {
	name = fmt.Sprintf("%s.log.%04d%02d%02d-%02d%02d%02d.%d",
		program,
		t.Year(),
		t.Month(),
		t.Day(),
		t.Hour(),
		t.Minute(),
		t.Second(),
		pid)
	return name, program + ".log"
}

func createNamedLogfile(dir string, t time.Time) (f *os.File, fname string, err error) {
	name, link := logName(t)
	fname = filepath.Join(dir, name)
	f, err = os.Create(fname)
	if err != nil {
		return nil, fname, fmt.Errorf("log: cannot create log: %w", err)
	}
	symlink := filepath.Join(dir, link)
	os.Remove(symlink)        // ignore err
	os.Symlink(name, symlink) // ignore err
	return f, fname, nil
}

// NewLogger returns a JSON logger, writing to w, that uses the duim
// level names.
func NewLogger(w io.Writer) *slog.Logger {
	return newLogger(w)
}

func newLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.Level(-8),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				level := a.Value.Any().(slog.Level)
				levelLabel, exists := levelNames[level]
				if !exists {
					levelLabel = level.String()
				}
				a.Value = slog.StringValue(levelLabel)
			}
			return a
		}}
	return slog.New(slog.NewJSONHandler(w, opts))
}
