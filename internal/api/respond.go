package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"posadmin/m/internal/service"
)

func decodeJSON(r *http.Request, dest interface{}) error {
	return json.NewDecoder(r.Body).Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondMessage(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusOK, map[string]string{"message": message})
}

// respondServiceError answers 400 for natural-key conflicts and 500 for
// everything else, passing the error message through.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if service.IsConflict(err) {
		h.metrics.conflicts.WithLabelValues(routePattern(r)).Inc()
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}

// pathID reads the {id} URL parameter. A non-numeric id is an internal error,
// like any other malformed numeric input.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, service.Internal(fmt.Errorf("invalid id %q", raw))
	}
	return id, nil
}
