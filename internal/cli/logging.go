package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
)

const loggerName = "matcalc"

type loggerKey struct{}

// WithLogger stores logger in ctx for the command being run.
func WithLogger(ctx context.Context, logger hclog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// LoggerFrom returns the logger stored by WithLogger, or a logger that drops everything.
func LoggerFrom(ctx context.Context) hclog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(hclog.Logger); ok {
			return l
		}
	}

	return hclog.NewNullLogger()
}

// newLogger builds the root logger from the --log-level and --log-json flags.
func newLogger(level string, jsonFormat bool, output io.Writer) (hclog.Logger, error) {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		return nil, fmt.Errorf("unknown log level %q (want trace, debug, info, warn, error or off)", level)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       loggerName,
		Level:      lvl,
		Output:     output,
		JSONFormat: jsonFormat,
	}), nil
}
