package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Recover converts a handler panic into a 500 response.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("internal server error",
					"error", err,
					"method", r.Method,
					"url", r.URL.String(),
					"stack_trace", string(debug.Stack()),
				)

				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
