package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// parseID extracts the {id} path parameter. A malformed id cannot name an
// existing resource, so it is reported as 404.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "resource not found")
		return uuid.Nil, false
	}
	return id, true
}
