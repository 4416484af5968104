package logging

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(Config{Level: level, Output: &buf})
	l.out.now = func() time.Time {
		return time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	}
	return l, &buf
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{" info ", LevelInfo},
		{"", LevelInfo},
		{"warn", LevelWarn},
		{"Warning", LevelWarn},
		{"error", LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("verbose")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestLineFormat(t *testing.T) {
	l, buf := newTestLogger(LevelInfo)
	l.WithComponent("config").WithField("path", "my form.toml").Info("loaded %d fields", 3)

	assert.Equal(t,
		`time=2026-01-02T15:04:05.000 level=INFO msg="loaded 3 fields" component=config path="my form.toml"`+"\n",
		buf.String())
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newTestLogger(LevelWarn)
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "level=WARN msg=w")
	assert.Contains(t, lines[1], "level=ERROR msg=e")
}

func TestWithFieldsDoesNotMutateParent(t *testing.T) {
	l, buf := newTestLogger(LevelInfo)
	child := l.WithFields(map[string]any{"a": 1, "b": "x"})
	child.WithField("a", 2).Info("override")
	l.Info("parent")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "msg=override a=2 b=x"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "msg=parent"), lines[1])
}

func TestDisableAffectsDerivedLoggers(t *testing.T) {
	l, buf := newTestLogger(LevelDebug)
	child := l.WithComponent("app")
	l.Disable()
	child.Error("hidden")
	assert.Empty(t, buf.String())

	l.Enable()
	child.Error("shown")
	assert.Contains(t, buf.String(), "msg=shown component=app")
}

func TestDiscard(t *testing.T) {
	l := Discard()
	assert.NotPanics(t, func() { l.WithField("k", "v").Error("nothing") })
}

func TestConcurrentWrites(t *testing.T) {
	l, buf := newTestLogger(LevelInfo)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.WithField("worker", i).Info("tick")
		}()
	}
	wg.Wait()
	assert.Equal(t, 8, strings.Count(buf.String(), "\n"))
}
