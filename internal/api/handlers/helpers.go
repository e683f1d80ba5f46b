package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"freight-route-service/internal/domain"
	"freight-route-service/internal/platform/obs"
	"log"
	"net/http"
)

// httpStatusError carries a client-facing status and message through the
// handler call chain.
type httpStatusError struct {
	Code int
	Msg  string
}

func (e *httpStatusError) Error() string { return e.Msg }

func badRequest(msg string) error {
	return &httpStatusError{Code: http.StatusBadRequest, Msg: msg}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError maps domain failures onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var he *httpStatusError
	switch {
	case errors.As(err, &he):
		writeError(w, r, he.Code, he.Msg)
	case errors.Is(err, domain.ErrUnknownLocation):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNoPath),
		errors.Is(err, domain.ErrNoCapableVehicle),
		errors.Is(err, domain.ErrSameOriginDestination):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, r, http.StatusServiceUnavailable, "request cancelled")
	default:
		log.Printf("%s failed: req_id=%s err=%v", op, obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
