// Package log provides the logging interface shared by the emulator
// components, along with a logrus backed implementation.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Logger is the interface components use to report what they are doing.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger writing to stdout at info level. Colours are only
// used when stdout is a terminal.
func New() Logger {
	return NewWithLevel(logrus.InfoLevel)
}

// NewWithLevel returns a Logger writing to stdout at the given level.
func NewWithLevel(level logrus.Level) Logger {
	return newLogger(os.Stdout, level, term.IsTerminal(int(os.Stdout.Fd())))
}

func newLogger(w io.Writer, level logrus.Level, colours bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    !colours,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
