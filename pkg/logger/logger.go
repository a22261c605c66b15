package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

var Logger zerolog.Logger

// Init configures the global logger. Development mode switches to the
// human-readable console writer. The instance level stays wide open so the
// global level set through SetLevel is the single filtering knob.
func Init(serviceName string, development bool) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var output io.Writer = os.Stdout
	if development {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		}
	}

	Logger = zerolog.New(output).
		Level(zerolog.TraceLevel).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()

	log.Logger = Logger
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// SetLevel sets the global log level from its string name. Unknown names
// fall back to info.
func SetLevel(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

// WithContext returns a logger annotated with the trace and span IDs carried
// by ctx, when a recording span is present.
func WithContext(ctx context.Context) *zerolog.Logger {
	l := Logger.With().Logger()

	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		l = l.With().
			Str("trace_id", sc.TraceID().String()).
			Str("span_id", sc.SpanID().String()).
			Logger()
	}

	return &l
}

func Debug(ctx context.Context) *zerolog.Event { return WithContext(ctx).Debug() }
func Info(ctx context.Context) *zerolog.Event  { return WithContext(ctx).Info() }
func Warn(ctx context.Context) *zerolog.Event  { return WithContext(ctx).Warn() }
func Error(ctx context.Context) *zerolog.Event { return WithContext(ctx).Error() }
