// Package logger provides the --verbose diagnostics of tecy.
// Messages go to stderr and are dropped unless verbose mode is on, so
// the normal output of a run stays limited to what the CLI prints.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level tags a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
)

// String returns the tag printed in front of a message.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	default:
		return "LOG"
	}
}

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the writer for verbose logs. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	output = w
}

func logf(level Level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, "["+level.String()+"] "+format+"\n", args...)
}

// Debug logs pipeline internals: strategy attempts, line counts.
func Debug(format string, args ...any) {
	logf(LevelDebug, format, args...)
}

// Info logs a step that completed.
func Info(format string, args ...any) {
	logf(LevelInfo, format, args...)
}

// Warn logs a recoverable problem, such as an extractor falling back.
func Warn(format string, args ...any) {
	logf(LevelWarn, format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Timed starts a timer and returns a func that logs the elapsed time
// for label at debug level.
//
//	defer logger.Timed("pdf extractor")()
func Timed(label string) func() {
	start := time.Now()
	return func() {
		logf(LevelDebug, "%s took %s", label, time.Since(start).Round(time.Microsecond))
	}
}
