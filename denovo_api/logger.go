package denovo_api

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Create the logger for skip diagnostics
// Verbose enables debug messages, mute only lets errors through
func newLogger(out io.Writer, verbose bool, mute bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	switch {
	case mute:
		logger.SetLevel(logrus.ErrorLevel)
	case verbose:
		logger.SetLevel(logrus.DebugLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}
