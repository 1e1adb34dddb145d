package logger

import "github.com/user/vidcompare/pkg/ports"

// TeeLogger forwards every message to several loggers.
type TeeLogger struct {
	loggers []ports.Logger
}

// Tee creates a logger writing to all of the given loggers. Nil entries are skipped.
func Tee(loggers ...ports.Logger) *TeeLogger {
	t := &TeeLogger{}
	for _, l := range loggers {
		if l != nil {
			t.loggers = append(t.loggers, l)
		}
	}
	return t
}

func (t *TeeLogger) Debug(msg string, args ...interface{}) {
	for _, l := range t.loggers {
		l.Debug(msg, args...)
	}
}

func (t *TeeLogger) Info(msg string, args ...interface{}) {
	for _, l := range t.loggers {
		l.Info(msg, args...)
	}
}

func (t *TeeLogger) Warn(msg string, args ...interface{}) {
	for _, l := range t.loggers {
		l.Warn(msg, args...)
	}
}

func (t *TeeLogger) Error(msg string, args ...interface{}) {
	for _, l := range t.loggers {
		l.Error(msg, args...)
	}
}

// WithComponent returns a tee of the component loggers.
func (t *TeeLogger) WithComponent(component string) ports.Logger {
	out := &TeeLogger{loggers: make([]ports.Logger, len(t.loggers))}
	for i, l := range t.loggers {
		out.loggers[i] = l.WithComponent(component)
	}
	return out
}

var _ ports.Logger = (*TeeLogger)(nil)
