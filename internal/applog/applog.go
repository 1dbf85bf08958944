// Package applog is the interpreter's ambient diagnostic logger: run
// start/end, source size, and arena allocation counts, all
// on standard error and gated behind the WISP_DEBUG environment variable
// so it never competes with the language's own stdout contract. It is
// never exposed to the language as a builtin.
package applog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/wisplang/wisp/internal/config"
)

// Level is the severity of one log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
}

// Logger writes leveled, prefixed lines to an output, guarded by a mutex
// so concurrent callers (none today, but cheap to afford) never interleave
// a line.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	prefix  string
	enabled bool
}

// New constructs a Logger writing to stderr. Debug-level output is
// suppressed unless the WISP_DEBUG environment variable is set.
func New(prefix string) *Logger {
	_, debug := os.LookupEnv(config.DebugEnvVar)
	return &Logger{out: os.Stderr, prefix: prefix, enabled: debug}
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if level == LevelDebug && !l.enabled {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	ts := time.Now().UTC().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		fmt.Fprintf(l.out, "%s [%s] %s: %s\n", ts, levelNames[level], l.prefix, msg)
		return
	}
	fmt.Fprintf(l.out, "%s [%s] %s\n", ts, levelNames[level], msg)
}

// Debug logs a line visible only when WISP_DEBUG is set.
func (l *Logger) Debug(format string, args ...interface{}) { l.log(LevelDebug, format, args...) }

// Info logs a line unconditionally.
func (l *Logger) Info(format string, args ...interface{}) { l.log(LevelInfo, format, args...) }
