package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ZerologLogger implements Logger on top of zerolog.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewConsoleLogger returns a human-readable logger writing to stderr at the given level.
func NewConsoleLogger(level zerolog.Level) *ZerologLogger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return &ZerologLogger{logger: zerolog.New(output).Level(level).With().Timestamp().Logger()}
}

// NewZerologLogger wraps an existing zerolog.Logger.
func NewZerologLogger(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: logger}
}

// With returns a child logger that always carries the given fields.
func (z *ZerologLogger) With(fields ...Field) *ZerologLogger {
	ctx := z.logger.With()
	for _, f := range fields {
		ctx = ctx.Interface(f.Key, f.Value)
	}
	return &ZerologLogger{logger: ctx.Logger()}
}

// Debug logs a message at debug level.
func (z *ZerologLogger) Debug(msg string, fields ...Field) { emit(z.logger.Debug(), msg, fields) }

// Info logs a message at info level.
func (z *ZerologLogger) Info(msg string, fields ...Field) { emit(z.logger.Info(), msg, fields) }

// Warn logs a message at warn level.
func (z *ZerologLogger) Warn(msg string, fields ...Field) { emit(z.logger.Warn(), msg, fields) }

// Error logs a message at error level.
func (z *ZerologLogger) Error(msg string, fields ...Field) { emit(z.logger.Error(), msg, fields) }

func emit(event *zerolog.Event, msg string, fields []Field) {
	if event == nil {
		return
	}
	for _, f := range fields {
		event = addField(event, f)
	}
	event.Msg(msg)
}

func addField(event *zerolog.Event, f Field) *zerolog.Event {
	switch v := f.Value.(type) {
	case string:
		return event.Str(f.Key, v)
	case []string:
		return event.Strs(f.Key, v)
	case int:
		return event.Int(f.Key, v)
	case float64:
		return event.Float64(f.Key, v)
	case bool:
		return event.Bool(f.Key, v)
	case time.Duration:
		return event.Dur(f.Key, v)
	case error:
		return event.Err(v)
	default:
		return event.Interface(f.Key, v)
	}
}
