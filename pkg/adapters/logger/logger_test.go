package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/vidcompare/pkg/ports"
)

var lineRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3}:(DEBUG|INFO|WARNING|ERROR):`)

func TestFileLogger_LineFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewFileWriter(&buf, ports.LevelDebug)

	log.Debug("Timer started with interval: %d ms", 33)
	log.Warn("First video not selected.")
	log.WithComponent("compositor").Error("Error converting frames: %s", "bad")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Regexp(t, lineRe, line)
	}
	assert.True(t, strings.HasSuffix(lines[0], ":DEBUG:Timer started with interval: 33 ms"))
	assert.Contains(t, lines[1], ":WARNING:First video not selected.")
	assert.Contains(t, lines[2], ":ERROR:[compositor] Error converting frames: bad")
}

func TestFileLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewFileWriter(&buf, ports.LevelWarn)

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestFileLogger_AppendMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultLogFile)

	for _, msg := range []string{"first run", "second run"} {
		log, err := NewFile(path, ports.LevelInfo)
		require.NoError(t, err)
		log.Info(msg)
		require.NoError(t, log.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}

func TestConsoleLogger_Streams(t *testing.T) {
	var out, errOut bytes.Buffer
	log := &ConsoleLogger{level: ports.LevelInfo, out: &out, errOut: &errOut}

	log.Debug("not shown")
	log.Info("progress")
	log.WithComponent("playback").Error("failure")

	assert.Equal(t, "progress\n", out.String())
	assert.Equal(t, "[playback] failure\n", errOut.String())
}

func TestTee(t *testing.T) {
	var a, b bytes.Buffer
	log := Tee(NewConsoleWriter(ports.LevelDebug, &a), nil, NewConsoleWriter(ports.LevelError, &b))

	log.Info("info line")
	log.WithComponent("x").Error("error line")

	assert.Contains(t, a.String(), "info line")
	assert.Contains(t, a.String(), "[x] error line")
	assert.NotContains(t, b.String(), "info line")
	assert.Contains(t, b.String(), "[x] error line")
}

func TestNoop(t *testing.T) {
	log := NewNoop()
	log.Error("nothing")
	assert.Same(t, log, log.WithComponent("c"))
}
