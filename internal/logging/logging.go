// Package logging configures the application-wide structured logger.
package logging

import (
	"os"

	"creditledger/internal/config"

	"github.com/sirupsen/logrus"
)

// Setup builds the shared logrus logger. Output is JSON so log
// aggregation can index the attribute fields directly.
func Setup() *logrus.Logger {
	logger := &logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stderr,
		Level: logrus.InfoLevel,
	}

	if lvl, err := logrus.ParseLevel(config.GetEnv("LOG_LEVEL", "info")); err == nil {
		logger.Level = lvl
	}

	return logger
}
