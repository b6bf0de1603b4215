package utils

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger for all storelens components.
var Log = logrus.New()

// SetLogLevel configures the shared logger from a level string.
func SetLogLevel(level string) {
	// trace and panic levels are intentionally not exposed
	switch strings.ToLower(level) {
	case "debug":
		Log.SetLevel(logrus.DebugLevel)
	case "info":
		Log.SetLevel(logrus.InfoLevel)
	case "warning", "warn":
		Log.SetLevel(logrus.WarnLevel)
	case "error":
		Log.SetLevel(logrus.ErrorLevel)
	case "fatal":
		Log.SetLevel(logrus.FatalLevel)
	default:
		Log.Fatal("Bad log level string")
	}
}
