package http

import (
	"net/http"
	"time"

	"github.com/mkhailov/go-storage-sync/internal/logger"
)

// withLogging emits one log line per served request: method, URI, status,
// response size and wall time. The entry goes through the request logger,
// so the trace ID attached by withTraceID shows up on it as well.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		// снимок до ServeHTTP: хендлеры ниже по цепочке могут менять запрос
		method := r.Method
		uri := r.RequestURI

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", method).
			Str("uri", uri).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
