package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// pgxLogger adapts zerolog.Logger to pgx's tracelog interface.
type pgxLogger struct {
	logger zerolog.Logger
}

// newPgxLogger builds a child logger tagged component=pgx so SQL noise stays filterable.
func newPgxLogger(logger zerolog.Logger) *pgxLogger {
	l := logger.With().Str("component", "pgx").Logger()
	return &pgxLogger{logger: l}
}

// Log implements tracelog.Logger. Well-known keys (sql, args, time) get typed
// fields; the rest of data is attached as is.
func (l *pgxLogger) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	var event *zerolog.Event
	switch level {
	case tracelog.LogLevelNone:
		return
	case tracelog.LogLevelTrace:
		event = l.logger.Trace()
	case tracelog.LogLevelDebug:
		event = l.logger.Debug()
	case tracelog.LogLevelInfo:
		event = l.logger.Info()
	case tracelog.LogLevelWarn:
		event = l.logger.Warn()
	case tracelog.LogLevelError:
		event = l.logger.Error()
	default:
		event = l.logger.Info().Str("pgx_log_level", level.String())
	}

	rest := make(map[string]any, len(data))
	for k, v := range data {
		switch val := v.(type) {
		case string:
			if k == "sql" {
				event = event.Str("sql", val)
				continue
			}
		case time.Duration:
			if k == "time" {
				event = event.Dur("took", val)
				continue
			}
		case error:
			if k == "err" {
				event = event.Err(val)
				continue
			}
		}
		rest[k] = v
	}
	if len(rest) > 0 {
		event = event.Fields(rest)
	}
	event.Msg(msg)
}
