package middlewares

import (
	"context"
	"net/http"
	"secondheart-dashboard/internal/pkg/constvars"
	"secondheart-dashboard/internal/pkg/utils"
	"time"

	"github.com/sirupsen/logrus"
)

type Middlewares struct {
	Log *logrus.Logger
}

func NewMiddlewares(log *logrus.Logger) *Middlewares {
	return &Middlewares{Log: log}
}

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

// RequestID honours a client-provided X-Request-ID and mints one otherwise.
func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		if requestID == "" {
			requestID = utils.GenerateRequestID()
		}

		ctx := context.WithValue(r.Context(), constvars.ContextRequestIDKey, requestID)
		w.Header().Set(constvars.HeaderXRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rec, r)

		m.Log.WithFields(logrus.Fields{
			constvars.LoggingRequestIDKey:  r.Context().Value(constvars.ContextRequestIDKey),
			constvars.LoggingMethodKey:     r.Method,
			constvars.LoggingEndpointKey:   r.URL.Path,
			constvars.LoggingStatusCodeKey: rec.statusCode,
			constvars.LoggingDurationKey:   time.Since(start).String(),
			constvars.LoggingRemoteAddrKey: r.RemoteAddr,
		}).Info("request completed")
	})
}
