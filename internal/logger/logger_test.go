package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var tests = []struct {
		level    VerboseLevel
		expected []string
	}{
		{VerboseOff, []string{"warn"}},
		{VerboseInfo, []string{"warn", "info"}},
		{VerboseDebug, []string{"warn", "info", "debug"}},
		{VerboseTrace, []string{"warn", "info", "debug", "trace"}},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		l := NewLogger(&buf).SetVerboseLevel(tt.level)
		l.out.SetFlags(0)

		l.Warnf("%s", "warn")
		l.Info("info")
		l.Debugf("%s", "debug")
		l.Trace("trace")

		var expected string
		for _, line := range tt.expected {
			expected += line + "\n"
		}
		assert.Equal(t, expected, buf.String())
	}
}

func TestCurrentLogger(t *testing.T) {
	assert.Same(t, CurrentLogger(), CurrentLogger())
	assert.Equal(t, VerboseOff, CurrentLogger().VerboseLevel())
}

func TestLoggerPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	l.out.SetFlags(log.Lmsgprefix)
	l.out.SetPrefix("mdscan: ")
	l.Warn("careful")
	assert.Equal(t, "mdscan: careful\n", buf.String())
}
