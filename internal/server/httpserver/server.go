// Package httpserver exposes the entry service as a JSON REST API.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/diary/internal/common"
	"github.com/dmitrijs2005/diary/internal/logging"
	"github.com/dmitrijs2005/diary/internal/observability"
	"github.com/dmitrijs2005/diary/internal/server/services"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// EntryService is the part of services.EntryService the handlers use.
type EntryService interface {
	Create(ctx context.Context, in services.CreateEntryInput) (*services.Entry, error)
	List(ctx context.Context) ([]*services.Entry, error)
	Get(ctx context.Context, id string) (*services.Entry, error)
	Update(ctx context.Context, id string, in services.UpdateEntryInput) (*services.Entry, error)
	Delete(ctx context.Context, id string) error
}

// Pinger reports storage reachability for /healthz.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	address string
	entries EntryService
	pinger  Pinger
	logger  logging.Logger
	schema  EntrySchemas
	handler http.Handler
}

// NewServer builds the router. tracer and meter may come from a disabled
// observability.Provider, in which case they are no-ops.
func NewServer(address string, entries EntryService, pinger Pinger, logger logging.Logger,
	tracer trace.Tracer, meter metric.Meter, serviceName string) *Server {

	s := &Server{
		address: address,
		entries: entries,
		pinger:  pinger,
		logger:  logger.With("module", "http_server"),
		schema:  buildSchemas(),
	}

	r := mux.NewRouter()
	r.Use(observability.HTTPMiddleware(tracer, meter, serviceName))
	r.Use(accessLog(s.logger))

	r.HandleFunc("/healthz", s.health).Methods(http.MethodGet)
	r.HandleFunc(common.EntriesPath+"/schema", s.entrySchema).Methods(http.MethodGet)
	r.HandleFunc(common.EntriesPath, s.createEntry).Methods(http.MethodPost)
	r.HandleFunc(common.EntriesPath, s.listEntries).Methods(http.MethodGet)
	r.HandleFunc(common.EntriesPath+"/{id}", s.getEntry).Methods(http.MethodGet)
	r.HandleFunc(common.EntriesPath+"/{id}", s.updateEntry).Methods(http.MethodPatch)
	r.HandleFunc(common.EntriesPath+"/{id}", s.deleteEntry).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(s.notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(s.methodNotAllowed)

	s.handler = corsMiddleware(r)
	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is cancelled, then stops accepting connections and
// waits up to shutdownTimeout for in-flight requests.
func (s *Server) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen, shutdownTimeout)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, listen net.Listener, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		done <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-done
}
