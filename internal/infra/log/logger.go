// Package logs builds the process-wide slog.Logger for the warung service.
// The output format follows config: pretty text for local development, JSON
// otherwise.
package logs

import (
	"log/slog"
	"os"
	"strings"

	"warung/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params carries the fx dependencies for constructing the logger.
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the slog.Logger shared by every component of the service.
func New(params Params) (*slog.Logger, error) {
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	var logger *slog.Logger
	if params.Config.Env.Log.Pretty {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}

	return logger, nil
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
