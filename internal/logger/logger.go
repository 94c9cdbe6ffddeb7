// Package logger configures logrus and carries request-scoped fields.
package logger

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type ctxKey string

const RequestIDKey ctxKey = "requestId"

// New builds a logger writing to out. format is "text" or "json".
func New(out io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return log, nil
}

// For returns an entry tagged with the request id stored in ctx, if any.
func For(ctx context.Context, log logrus.FieldLogger) logrus.FieldLogger {
	id, ok := ctx.Value(RequestIDKey).(string)
	if !ok || id == "" {
		return log
	}
	return log.WithField("request_id", id)
}

func ContextWithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// Track logs msg with its duration when the returned func is called.
// Calls slower than slow are logged at warn level.
func Track(ctx context.Context, log logrus.FieldLogger, msg string, slow time.Duration) func() {
	start := time.Now()
	return func() {
		dur := time.Since(start)
		entry := For(ctx, log).WithField("duration", dur.String())
		if dur > slow {
			entry.Warnf("%s completed (SLOW)", msg)
		} else {
			entry.Debugf("%s completed", msg)
		}
	}
}
