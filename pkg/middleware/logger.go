package middleware

import (
	"net/http"
	"time"

	"movie-booking-client/pkg/utils"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// pageRecorder remembers what a page answered
type pageRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (p *pageRecorder) WriteHeader(code int) {
	if p.status == 0 {
		p.status = code
	}
	p.ResponseWriter.WriteHeader(code)
}

func (p *pageRecorder) Write(b []byte) (int, error) {
	if p.status == 0 {
		p.status = http.StatusOK
	}
	n, err := p.ResponseWriter.Write(b)
	p.size += n
	return n, err
}

// Logger writes one entry per page navigation. Guard redirects and failed
// pages are logged at warn level.
func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &pageRecorder{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			if rec.status == 0 {
				rec.status = http.StatusOK
			}
			level := zapcore.InfoLevel
			if rec.status >= http.StatusBadRequest {
				level = zapcore.WarnLevel
			}

			logger.Log(level, "Page request",
				zap.String("method", r.Method),
				zap.String("page", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.Int("status", rec.status),
				zap.String("location", w.Header().Get("Location")),
				zap.Int("bytes", rec.size),
				zap.Duration("took", time.Since(start)),
				zap.String("request_id", utils.GetRequestIDFromContext(r.Context())),
				zap.String("output", utils.GetOutputFromContext(r.Context())),
			)
		})
	}
}
