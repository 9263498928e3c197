package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging returns a JSON logger writing to stdout at the given level.
// An empty or unknown level falls back to info.
func SetupLogging(level string) *logrus.Logger {
	return newLogger(os.Stdout, level)
}

func newLogger(out io.Writer, level string) *logrus.Logger {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:      out,
		Hooks:    make(logrus.LevelHooks),
		Level:    lvl,
		ExitFunc: os.Exit,
	}

	return &logger
}
