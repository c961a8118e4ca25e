// Package logging provides the shared application logger.
package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

// Init configures the global logger at the given level. Output is one JSON
// object per line on stdout. Safe to call more than once; only the first
// call takes effect.
func Init(level logrus.Level) {
	once.Do(func() {
		logger = logrus.New()
		logger.SetOutput(os.Stdout)
		logger.SetLevel(level)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "ts",
				logrus.FieldKeyMsg:  "msg",
			},
		})
	})
}

// Get returns the global logger, initializing it at info level if needed.
func Get() *logrus.Logger {
	if logger == nil {
		Init(logrus.InfoLevel)
	}
	return logger
}
