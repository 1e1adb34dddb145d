package mocks

import (
	"fmt"
	"sync"

	"github.com/user/vidcompare/pkg/ports"
)

// LogEntry is one recorded log line.
type LogEntry struct {
	Level     ports.LogLevel
	Component string
	Message   string
}

// Logger records messages. Component loggers share the parent's records.
type Logger struct {
	mu        *sync.Mutex
	entries   *[]LogEntry
	component string
}

// NewLogger creates a recording logger.
func NewLogger() *Logger {
	return &Logger{mu: &sync.Mutex{}, entries: &[]LogEntry{}}
}

func (m *Logger) Debug(msg string, args ...interface{}) { m.add(ports.LevelDebug, msg, args) }
func (m *Logger) Info(msg string, args ...interface{})  { m.add(ports.LevelInfo, msg, args) }
func (m *Logger) Warn(msg string, args ...interface{})  { m.add(ports.LevelWarn, msg, args) }
func (m *Logger) Error(msg string, args ...interface{}) { m.add(ports.LevelError, msg, args) }

func (m *Logger) WithComponent(component string) ports.Logger {
	return &Logger{mu: m.mu, entries: m.entries, component: component}
}

func (m *Logger) add(level ports.LogLevel, msg string, args []interface{}) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	*m.entries = append(*m.entries, LogEntry{Level: level, Component: m.component, Message: msg})
}

// Entries returns the recorded entries at or above level.
func (m *Logger) Entries(level ports.LogLevel) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []LogEntry
	for _, e := range *m.entries {
		if e.Level >= level {
			out = append(out, e)
		}
	}
	return out
}

var _ ports.Logger = (*Logger)(nil)
