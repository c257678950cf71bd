package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

// HTTPMiddleware starts a server span per request and records request
// count and duration. Routes are labelled with the mux path template so
// entry ids do not explode metric cardinality.
func HTTPMiddleware(tracer trace.Tracer, meter metric.Meter, serviceName string) mux.MiddlewareFunc {
	requestDuration, _ := meter.Float64Histogram(
		fmt.Sprintf("%s_request_duration_seconds", serviceName),
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	requestsTotal, _ := meter.Int64Counter(
		fmt.Sprintf("%s_requests_total", serviceName),
		metric.WithDescription("Total HTTP requests"),
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			route := RouteTemplate(r)

			ctx, span := tracer.Start(r.Context(), r.Method+" "+route,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					semconv.HTTPMethod(r.Method),
					semconv.HTTPRoute(route),
				),
			)
			defer span.End()

			rw := NewStatusRecorder(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			attrs := metric.WithAttributes(
				attribute.String("method", r.Method),
				attribute.String("route", route),
				attribute.Int("status", rw.Status),
			)
			requestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
			requestsTotal.Add(ctx, 1, attrs)

			span.SetAttributes(semconv.HTTPStatusCode(rw.Status))
			if rw.Status >= http.StatusInternalServerError {
				span.RecordError(fmt.Errorf("HTTP %d", rw.Status))
			}
		})
	}
}

// RouteTemplate returns the matched mux path template, or the raw path
// when the request did not match a route.
func RouteTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}

// StatusRecorder captures the status code written by a handler.
type StatusRecorder struct {
	http.ResponseWriter
	Status int
}

func NewStatusRecorder(w http.ResponseWriter) *StatusRecorder {
	return &StatusRecorder{ResponseWriter: w, Status: http.StatusOK}
}

func (rw *StatusRecorder) WriteHeader(code int) {
	rw.Status = code
	rw.ResponseWriter.WriteHeader(code)
}
