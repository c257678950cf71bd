package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const healthTimeout = 2 * time.Second

func (s *Server) createEntry(w http.ResponseWriter, r *http.Request) {
	in, err := decodeCreate(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	e, err := s.entries.Create(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEntryResponse(e))
}

func (s *Server) listEntries(w http.ResponseWriter, r *http.Request) {
	es, err := s.entries.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponses(es))
}

func (s *Server) getEntry(w http.ResponseWriter, r *http.Request) {
	e, err := s.entries.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(e))
}

func (s *Server) updateEntry(w http.ResponseWriter, r *http.Request) {
	in, err := decodeUpdate(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	e, err := s.entries.Update(r.Context(), mux.Vars(r)["id"], in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(e))
}

func (s *Server) deleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := s.entries.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) entrySchema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.schema)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := s.pinger.Ping(ctx); err != nil {
		s.logger.Warn(ctx, "health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	writeErrorBody(w, http.StatusNotFound, "Cannot "+r.Method+" "+r.URL.Path)
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeErrorBody(w, http.StatusMethodNotAllowed, "Method "+r.Method+" not allowed on "+r.URL.Path)
}
