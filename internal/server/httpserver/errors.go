package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/diary/internal/server/services"
	"github.com/dmitrijs2005/diary/internal/validation"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorBody(w http.ResponseWriter, status int, message any) {
	writeJSON(w, status, ErrorResponse{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
	})
}

// writeError maps service errors to HTTP replies. Anything that is not a
// validation, not-found or body decoding failure is logged and hidden
// behind a 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr *validation.Error
		nf   *services.NotFoundError
	)
	switch {
	case errors.As(err, &verr):
		writeErrorBody(w, http.StatusBadRequest, verr.Messages())
	case errors.As(err, &nf):
		writeErrorBody(w, http.StatusNotFound, nf.Error())
	case errors.Is(err, errBadBody):
		writeErrorBody(w, http.StatusBadRequest, []string{errBadBody.Error()})
	default:
		s.logger.Error(r.Context(), "request failed", "error", err, "method", r.Method, "path", r.URL.Path)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Message:    "Internal server error",
		})
	}
}
