package logging

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New returns a JSON logger writing to stderr. Unknown levels fall back to info.
func New(service, level string) *logrus.Logger {
	logger := logrus.New()
	logger.Out = os.Stderr
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	logger.SetReportCaller(lvl >= logrus.DebugLevel)

	logger.AddHook(serviceHook(service))
	return logger
}

// serviceHook stamps every entry with the emitting service name.
type serviceHook string

func (h serviceHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h serviceHook) Fire(e *logrus.Entry) error {
	if _, ok := e.Data["service"]; !ok {
		e.Data["service"] = string(h)
	}
	return nil
}
