package logger

import (
	"io"
	"os"

	"github.com/nu7hatch/gouuid"
	"github.com/sirupsen/logrus"
)

// Initialize configures logrus for a run of appName and returns logger
// tagged with app name and a fresh run ID.
func Initialize(appName string, level logrus.Level) *logrus.Entry {
	return initialize(os.Stderr, appName, level)
}

func initialize(output io.Writer, appName string, level logrus.Level) *logrus.Entry {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05.000"})
	logrus.SetOutput(output)
	logrus.SetLevel(level)

	runID := "unknown"
	if id, err := uuid.NewV4(); err == nil {
		runID = id.String()
	} else {
		logrus.Warnf("Cannot generate run ID: %v", err)
	}

	log := logrus.WithFields(logrus.Fields{"app": appName, "run": runID})
	log.Info("Starting")
	return log
}
