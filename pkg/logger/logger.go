package logger

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// New constructs the service logger. Development gets a human readable console writer
// and debug level unless level says otherwise.
func New(env string, level string) zerolog.Logger {
	return newWithWriter(os.Stdout, env, level)
}

func newWithWriter(w io.Writer, env string, level string) zerolog.Logger {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsedLevel = zerolog.InfoLevel
		if env == "development" {
			parsedLevel = zerolog.DebugLevel
		}
	}

	logger := zerolog.New(w).
		Level(parsedLevel).
		With().
		Timestamp().
		Logger()

	if env == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	}

	return logger
}

// Middleware logs one line per request and attaches the logger to the request context,
// so handlers can use zerolog.Ctx.
func Middleware(l zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r.WithContext(l.WithContext(r.Context())))

			l.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}
