package debuglog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerFormatsLines(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 13, 4, 5, 6_000_000, time.UTC) }

	l.Logf("screen %s -> %s", "main", "adding")

	assert.Equal(t, "[13:04:05.006] screen main -> adding\n", buf.String())
}

func TestNilLoggerIsNoop(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() {
		l.Log("x")
		l.Logf("%d", 1)
	})
}

func TestPackageLoggerBeforeInit(t *testing.T) {
	Close()
	assert.NotPanics(t, func() { Logf("dropped %d", 1) })
}

func TestInitAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, Init(path))
	Log("first")
	require.NoError(t, Init(path))
	Logf("second %d", 2)
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Equal(t, 2, strings.Count(text, "session started"))
	assert.Contains(t, text, "] first\n")
	assert.Contains(t, text, "] second 2\n")
}
