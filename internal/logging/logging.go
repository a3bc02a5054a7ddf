// Package logging appends timestamped lines to a log file under the OS temp
// directory and reads them back newest-first for the Logs view.
package logging

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the default log file created under os.TempDir.
const FileName = "gameoflife.log"

// Logger appends timestamped lines to a single log file.
type Logger struct {
	path string
	file *os.File
	out  *log.Logger
}

// Open creates or appends to the log file at path. An empty path selects the
// default location in the OS temp directory.
func Open(path string) (*Logger, error) {
	if path == "" {
		path = filepath.Join(os.TempDir(), FileName)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &Logger{
		path: path,
		file: f,
		out:  log.New(f, "", log.LstdFlags|log.Lmicroseconds),
	}, nil
}

// Printf writes one formatted line to the log file. A nil Logger discards
// the line.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil {
		return
	}
	l.out.Printf(format, args...)
}

// Tail returns up to n log lines, newest first. n <= 0 returns every line.
func (l *Logger) Tail(n int) []string {
	if l == nil {
		return nil
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil
	}
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for i := len(lines) - 1; i >= 0; i-- {
		out = append(out, lines[i])
		if n > 0 && len(out) == n {
			break
		}
	}
	return out
}

// Close releases the underlying file.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	return l.file.Close()
}
