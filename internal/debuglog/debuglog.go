// Package debuglog writes timestamped diagnostic lines to a file. The
// terminal is owned by the TUI, so nothing may be printed to stdout while it
// runs; this log is the only place for runtime diagnostics.
//
// Until Init is called every function is a no-op.
package debuglog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger appends timestamped lines to a writer.
type Logger struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time
}

// New returns a logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{out: w, now: time.Now}
}

// Log writes a message
func (l *Logger) Log(message string) {
	if l == nil || l.out == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := l.now().Format("15:04:05.000")
	fmt.Fprintf(l.out, "[%s] %s\n", timestamp, message)
}

// Logf writes a formatted message
func (l *Logger) Logf(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.Log(fmt.Sprintf(format, args...))
}

var (
	global *Logger
	file   *os.File
)

// Init opens filename for appending and routes the package-level functions
// to it. Calling Init again closes the previous file.
func Init(filename string) error {
	Close()

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	file = f
	global = New(f)
	global.Logf("=== session started at %s ===", time.Now().Format("2006-01-02 15:04:05"))
	return nil
}

// Close flushes and closes the log file.
func Close() {
	if file != nil {
		file.Close()
	}
	file = nil
	global = nil
}

// Log writes a message to the package logger
func Log(message string) {
	global.Log(message)
}

// Logf writes a formatted message to the package logger
func Logf(format string, args ...interface{}) {
	global.Logf(format, args...)
}
