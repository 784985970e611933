package log

import (
	"context"

	"github.com/sirupsen/logrus"
)

var (
	G = GetLogger

	// L is the entry used when the context carries no logger.
	L = logrus.NewEntry(logrus.StandardLogger())
)

type (
	loggerKey struct{}
)

// WithLogger returns a new context carrying logger.
func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// WithRelease returns a context whose logger tags every line with the
// release being processed.
func WithRelease(ctx context.Context, release string) context.Context {
	return WithLogger(ctx, G(ctx).WithField("release", release))
}

// WithAsset is WithRelease for a single asset.
func WithAsset(ctx context.Context, asset string) context.Context {
	return WithLogger(ctx, G(ctx).WithField("asset", asset))
}

// SetVerbose switches the standard logger to debug output.
func SetVerbose(verbose bool) {
	if verbose {
		L.Logger.SetLevel(logrus.DebugLevel)
		return
	}
	L.Logger.SetLevel(logrus.InfoLevel)
}

// GetLogger retrieves the current logger from the context. If no logger is
// available, the default logger is returned.
func GetLogger(ctx context.Context) *logrus.Entry {
	logger := ctx.Value(loggerKey{})

	if logger == nil {
		return L
	}

	return logger.(*logrus.Entry)
}
