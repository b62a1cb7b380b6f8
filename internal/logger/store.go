package logger

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
)

// NewCommandMonitor logs MongoDB commands through zerolog.
//
// Every finished command is logged at debug level when verbose is true.
// Commands slower than slowThreshold are always logged at warn level,
// and failed commands at error level. A zero threshold disables slow logging.
func NewCommandMonitor(logger zerolog.Logger, verbose bool, slowThreshold time.Duration) *event.CommandMonitor {
	var started sync.Map // request id -> command name

	finish := func(requestID int64, duration time.Duration) (string, *zerolog.Event) {
		name := ""
		if v, ok := started.LoadAndDelete(requestID); ok {
			name = v.(string)
		}
		switch {
		case slowThreshold > 0 && duration >= slowThreshold:
			return name, logger.Warn().Bool("slow", true)
		case verbose:
			return name, logger.Debug()
		default:
			return name, nil
		}
	}

	return &event.CommandMonitor{
		Started: func(_ context.Context, e *event.CommandStartedEvent) {
			started.Store(e.RequestID, e.CommandName)
			if verbose {
				logger.Debug().
					Str("command", e.CommandName).
					Str("database", e.DatabaseName).
					Int64("request_id", e.RequestID).
					Msg("mongo command started")
			}
		},
		Succeeded: func(_ context.Context, e *event.CommandSucceededEvent) {
			name, ev := finish(e.RequestID, e.Duration)
			if ev == nil {
				return
			}
			ev.Str("command", name).
				Int64("request_id", e.RequestID).
				Dur("duration", e.Duration).
				Msg("mongo command succeeded")
		},
		Failed: func(_ context.Context, e *event.CommandFailedEvent) {
			name, _ := finish(e.RequestID, e.Duration)
			logger.Error().
				Str("command", name).
				Int64("request_id", e.RequestID).
				Dur("duration", e.Duration).
				Str("failure", e.Failure).
				Msg("mongo command failed")
		},
	}
}
