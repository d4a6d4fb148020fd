package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		name   string
		level  Level
		logf   func(l *Logger)
		output bool
	}{
		{"debug below info", LevelInfo, func(l *Logger) { l.Debugf("x") }, false},
		{"info at info", LevelInfo, func(l *Logger) { l.Infof("x") }, true},
		{"error above warn", LevelWarn, func(l *Logger) { l.Errorf("x") }, true},
		{"trace at trace", LevelTrace, func(l *Logger) { l.Tracef("x") }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var b bytes.Buffer
			tc.logf(New(&b, "test", tc.level))
			assert.Equal(t, tc.output, b.Len() > 0)
		})
	}
}

func TestFormat(t *testing.T) {
	var b bytes.Buffer
	l := New(&b, "wm", LevelInfo)
	l.Warnf("group %q has %d windows", "web", 3)
	out := b.String()
	assert.Contains(t, out, "[warn] [wm] group \"web\" has 3 windows\n")
}

func TestNilOutput(t *testing.T) {
	l := New(nil, "wm", LevelTrace)
	assert.False(t, l.Enabled(LevelError))
	l.Errorf("dropped")

	var b bytes.Buffer
	l.SetOutput(&b)
	assert.True(t, l.Enabled(LevelError))
	l.Errorf("kept")
	assert.Contains(t, b.String(), "kept")
}

func TestPackageLogger(t *testing.T) {
	var b bytes.Buffer
	SetOutput(&b)
	SetLevel(LevelInfo)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetPrefix("groupwm")
		SetLevel(LevelInfo)
	})

	assert.Same(t, Default(), Default())
	assert.False(t, Default().Enabled(LevelDebug))
	SetLevel(LevelDebug)
	assert.True(t, Default().Enabled(LevelDebug))

	SetPrefix("test")
	Debugf("shown")
	assert.Contains(t, b.String(), "[debug] [test] shown\n")
}
