package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/user/vidcompare/pkg/ports"
)

// DefaultLogFile is the diagnostic log written next to the working directory.
const DefaultLogFile = "video_compare.log"

// FileLogger appends timestamped, severity-tagged lines to a log file:
//
//	2024-05-01 10:00:00,123:DEBUG:Timer started with interval: 33 ms
type FileLogger struct {
	entry  *logrus.Entry
	closer io.Closer
}

// NewFile opens path in append mode, creating it if needed.
func NewFile(path string, level ports.LogLevel) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l := NewFileWriter(f, level)
	l.closer = f
	return l, nil
}

// NewFileWriter creates a file-format logger writing to w.
func NewFileWriter(w io.Writer, level ports.LogLevel) *FileLogger {
	base := logrus.New()
	base.SetOutput(w)
	base.SetFormatter(&lineFormatter{})
	base.SetLevel(logrusLevel(level))
	return &FileLogger{entry: logrus.NewEntry(base)}
}

// Debug logs a debug message.
func (l *FileLogger) Debug(msg string, args ...interface{}) {
	l.entry.Debug(format(msg, args))
}

// Info logs an informational message.
func (l *FileLogger) Info(msg string, args ...interface{}) {
	l.entry.Info(format(msg, args))
}

// Warn logs a warning message.
func (l *FileLogger) Warn(msg string, args ...interface{}) {
	l.entry.Warn(format(msg, args))
}

// Error logs an error message.
func (l *FileLogger) Error(msg string, args ...interface{}) {
	l.entry.Error(format(msg, args))
}

// WithComponent returns a logger tagging lines with the component name.
// The returned logger shares the underlying file.
func (l *FileLogger) WithComponent(component string) ports.Logger {
	return &FileLogger{entry: l.entry.WithField(componentField, component)}
}

// Close closes the log file opened by NewFile.
func (l *FileLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func format(msg string, args []interface{}) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

func logrusLevel(level ports.LogLevel) logrus.Level {
	switch level {
	case ports.LevelDebug:
		return logrus.DebugLevel
	case ports.LevelInfo:
		return logrus.InfoLevel
	case ports.LevelWarn:
		return logrus.WarnLevel
	case ports.LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.PanicLevel
	}
}

const componentField = "component"

// lineFormatter renders "time:LEVEL:message" lines.
type lineFormatter struct{}

func (f *lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(e.Time.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&buf, ",%03d:", e.Time.Nanosecond()/1e6)
	buf.WriteString(strings.ToUpper(e.Level.String()))
	buf.WriteByte(':')
	if c, ok := e.Data[componentField]; ok {
		fmt.Fprintf(&buf, "[%v] ", c)
	}
	buf.WriteString(e.Message)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

var _ ports.Logger = (*FileLogger)(nil)
