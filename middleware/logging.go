package middleware

import (
	"log/slog"
	"net/http"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

type statusWriter struct {
	Status int
	inner  http.ResponseWriter
}

func (sw *statusWriter) Header() http.Header {
	return sw.inner.Header()
}

func (sw *statusWriter) WriteHeader(status int) {
	sw.Status = status
	sw.inner.WriteHeader(status)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if sw.Status == 0 {
		sw.Status = http.StatusOK
	}
	return sw.inner.Write(b)
}

// Log records one line per completed request, tagged with a short
// random request id.
func Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, _ := gonanoid.New()
		sw := &statusWriter{inner: w}
		start := time.Now()

		next.ServeHTTP(sw, r)

		slog.Info("request completed",
			"id", reqID,
			"method", r.Method,
			"url", r.URL.String(),
			"ip", r.RemoteAddr,
			"status", sw.Status,
			"duration", time.Since(start),
		)
	})
}
