package httpserver

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/diary/internal/logging"
	"github.com/dmitrijs2005/diary/internal/observability"
	"github.com/gorilla/mux"
)

// corsMiddleware answers preflight requests itself so method-restricted
// routes never turn them into 405s. It must wrap the router from outside.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
			w.Header().Set("Access-Control-Allow-Headers", reqHeaders)
		} else {
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		w.Header().Set("Access-Control-Max-Age", "600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// accessLog writes one line per request.
func accessLog(logger logging.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := observability.NewStatusRecorder(w)

			next.ServeHTTP(rw, r)

			logger.Info(r.Context(), "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"route", observability.RouteTemplate(r),
				"status", rw.Status,
				"duration", time.Since(start).String(),
			)
		})
	}
}
