// This file is part of WearCapture.
//
// WearCapture is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// WearCapture is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with WearCapture.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is a small ring-buffered central logger. Entries are
// gated by a Permission (an AllowLogging() bool capability) so that
// callers can mute noisy tags without threading a verbosity flag through
// every call site. The package-level functions operate on a shared
// default Logger; most callers only need those.
package logger

import (
	"fmt"
	"io"
	"sync"
)

// Permission is consulted before an entry is recorded. The package-level
// Allow permission always allows.
type Permission interface {
	AllowLogging() bool
}

type allowPermission struct{}

func (allowPermission) AllowLogging() bool { return true }

// Allow is a Permission that always allows logging.
var Allow Permission = allowPermission{}

// Logger is a fixed-capacity ring buffer of log lines.
type Logger struct {
	mu       sync.Mutex
	capacity int
	lines    []string

	echo      io.Writer
	echoAllow bool
}

// NewLogger returns a Logger that retains at most capacity entries.
func NewLogger(capacity int) *Logger {
	if capacity < 1 {
		capacity = 1
	}
	return &Logger{capacity: capacity}
}

// Log records a line of the form "tag: detail". error and fmt.Stringer
// detail values are unwrapped via Error()/String(); anything else is
// formatted with the %v verb.
func (l *Logger) Log(perm Permission, tag string, detail interface{}) {
	if perm != nil && !perm.AllowLogging() {
		return
	}

	l.append(tag, formatDetail(detail))
}

// Logf is Log with the detail built via fmt.Sprintf.
func (l *Logger) Logf(perm Permission, tag string, format string, args ...interface{}) {
	if perm != nil && !perm.AllowLogging() {
		return
	}

	l.append(tag, fmt.Sprintf(format, args...))
}

func formatDetail(detail interface{}) string {
	switch v := detail.(type) {
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (l *Logger) append(tag, detail string) {
	line := fmt.Sprintf("%s: %s", tag, detail)

	l.mu.Lock()
	l.lines = append(l.lines, line)
	if len(l.lines) > l.capacity {
		l.lines = l.lines[len(l.lines)-l.capacity:]
	}
	echo, allow := l.echo, l.echoAllow
	l.mu.Unlock()

	if allow && echo != nil {
		fmt.Fprintln(echo, line)
	}
}

// Write dumps every retained entry to w, one per line.
func (l *Logger) Write(w io.Writer) {
	l.mu.Lock()
	lines := append([]string(nil), l.lines...)
	l.mu.Unlock()

	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

// Tail writes the last n retained entries to w. Asking for more entries
// than are retained, or for zero, is not an error.
func (l *Logger) Tail(w io.Writer, n int) {
	l.mu.Lock()
	lines := append([]string(nil), l.lines...)
	l.mu.Unlock()

	if n <= 0 {
		return
	}
	if n > len(lines) {
		n = len(lines)
	}

	for _, line := range lines[len(lines)-n:] {
		fmt.Fprintln(w, line)
	}
}

// Clear empties the buffer.
func (l *Logger) Clear() {
	l.mu.Lock()
	l.lines = nil
	l.mu.Unlock()
}

// SetEcho mirrors every future entry to w as it is recorded, in addition
// to retaining it in the ring buffer. Passing a nil writer or echo=false
// disables mirroring.
func (l *Logger) SetEcho(w io.Writer, echo bool) {
	l.mu.Lock()
	l.echo = w
	l.echoAllow = echo && w != nil
	l.mu.Unlock()
}

// def is the package-level shared logger used by the top-level
// functions below.
var def = NewLogger(1000)

// Log records a line on the default Logger.
func Log(perm Permission, tag string, detail interface{}) { def.Log(perm, tag, detail) }

// Logf records a formatted line on the default Logger.
func Logf(perm Permission, tag string, format string, args ...interface{}) {
	def.Logf(perm, tag, format, args...)
}

// Write dumps the default Logger's entries to w.
func Write(w io.Writer) { def.Write(w) }

// Tail writes the last n entries of the default Logger to w.
func Tail(w io.Writer, n int) { def.Tail(w, n) }

// Clear empties the default Logger.
func Clear() { def.Clear() }

// SetEcho mirrors future default-Logger entries to w.
func SetEcho(w io.Writer, echo bool) { def.SetEcho(w, echo) }
