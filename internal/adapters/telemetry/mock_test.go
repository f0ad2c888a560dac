package telemetry_test

import (
	"io"
	"sync"
)

type debugEntry struct {
	msg  string
	args []any
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []debugEntry
}

func (l *recordingLogger) Debug(msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, debugEntry{msg: msg, args: args})
}

func (l *recordingLogger) Info(string)           {}
func (l *recordingLogger) Warn(string)           {}
func (l *recordingLogger) Error(error)           {}
func (l *recordingLogger) SetOutput(io.Writer)   {}
func (l *recordingLogger) SetJSON(bool)          {}
func (l *recordingLogger) SetLevel(string) error { return nil }

func (l *recordingLogger) snapshot() []debugEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]debugEntry(nil), l.entries...)
}
