package log

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, logrus.InfoLevel, false)

	l.Debugf("fetching %04X", 0x0100)
	assert.Empty(t, buf.String(), "debug is filtered at info level")

	l.Infof("loaded %s", "cpu instrs.gb")
	l.Errorf("timed out")
	assert.Equal(t, "level=info msg=loaded cpu instrs.gb\nlevel=error msg=timed out\n", buf.String())

	buf.Reset()
	l.SetLevel(logrus.DebugLevel)
	l.Debugf("fetching %04X", 0x0100)
	assert.Equal(t, "level=debug msg=fetching 0100\n", buf.String())
}

func TestLogger_Formatter(t *testing.T) {
	l := newLogger(&bytes.Buffer{}, logrus.InfoLevel, true)

	formatter, ok := l.Formatter.(*logrus.TextFormatter)
	require.True(t, ok)
	assert.False(t, formatter.DisableColors)
	assert.True(t, formatter.DisableTimestamp)
	assert.True(t, formatter.DisableSorting)
	assert.True(t, formatter.DisableQuote)

	l = newLogger(&bytes.Buffer{}, logrus.InfoLevel, false)
	assert.True(t, l.Formatter.(*logrus.TextFormatter).DisableColors)
}

func TestNew(t *testing.T) {
	l, ok := New().(*logrus.Logger)
	require.True(t, ok)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())

	l, ok = NewWithLevel(logrus.WarnLevel).(*logrus.Logger)
	require.True(t, ok)
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
}

func TestNullLogger(t *testing.T) {
	l := NewNullLogger()
	assert.NotPanics(t, func() {
		l.Infof("%d", 1)
		l.Errorf("%d", 2)
		l.Debugf("%d", 3)
	})
}
