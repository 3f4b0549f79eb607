// Package logger provides the prefixed, colored, leveled logger used across the application.
package logger

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

const (
	colorReset = "\033[0m"
	timeLayout = "2006/01/02 15:04:05"
)

var ErrEmptyPrefix = errors.New("logger prefix must not be empty")

// Logger writes `[PREFIX] [LEVEL] message` lines with a colored prefix.
type Logger struct {
	log *logrus.Logger
}

// New creates a Logger writing to out. color is an ANSI escape sequence
// applied to the prefix.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&formatter{prefix: prefix, color: color})
	return &Logger{log: l}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.log.Info(msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.log.Warn(msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.log.Error(msg)
}

type formatter struct {
	prefix string
	color  string
}

// Format implements logrus.Formatter.
func (f *formatter) Format(e *logrus.Entry) ([]byte, error) {
	line := fmt.Sprintf("%s %s[%s]%s [%s] %s\n",
		e.Time.Format(timeLayout), f.color, f.prefix, colorReset, levelName(e.Level), e.Message)
	return []byte(line), nil
}

func levelName(l logrus.Level) string {
	switch l {
	case logrus.WarnLevel:
		return "WARNING"
	case logrus.ErrorLevel:
		return "ERROR"
	case logrus.FatalLevel, logrus.PanicLevel:
		return "FATAL"
	case logrus.DebugLevel, logrus.TraceLevel:
		return "DEBUG"
	default:
		return "INFO"
	}
}
