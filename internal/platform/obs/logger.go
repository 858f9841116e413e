package obs

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

var base = newLogger("info", nil)

func newLogger(level string, out io.Writer) *logrus.Logger {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	if out != nil {
		l.SetOutput(out)
	}

	return l
}

// Init replaces the process logger. Call once from main.
func Init(level string, out io.Writer) {
	base = newLogger(level, out)
}

// Base returns the process logger.
func Base() *logrus.Logger { return base }

// Logger returns an entry tagged with the request id carried by ctx.
func Logger(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(base)
	if reqID := RequestID(ctx); reqID != "" {
		entry = entry.WithField("req_id", reqID)
	}
	return entry
}
