package cli

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger returns a logrus logger writing to w. debug forces the debug
// level, otherwise level is parsed and falls back to warn.
func newLogger(w io.Writer, level string, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	if debug {
		lvl = logrus.DebugLevel
	}
	logger.SetLevel(lvl)
	return logger
}
