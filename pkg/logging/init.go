package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type loggingContextKey string

const TrackingIDKey loggingContextKey = "trackingID"

func WithTrackingId(ctx context.Context) context.Context {
	trackingID := uuid.New().String()
	ctxWithTrackingId := context.WithValue(ctx, TrackingIDKey, trackingID)
	return ctxWithTrackingId
}

func TrackingID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	trackingID, _ := ctx.Value(TrackingIDKey).(string)
	return trackingID
}

type trackingIDFormatter struct {
	logrus.TextFormatter
}

func (f *trackingIDFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	trackingID := TrackingID(entry.Context)
	if trackingID != "" {
		entry.Data["trackingID"] = trackingID
	}

	return f.TextFormatter.Format(entry)
}

func Init(cfg *Config) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return errors.Wrapf(err, "invalid LOG_LEVEL %q", cfg.Level)
	}

	logrus.SetLevel(level)
	logrus.SetFormatter(&trackingIDFormatter{
		TextFormatter: logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
		},
	})

	return nil
}
