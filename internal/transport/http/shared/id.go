package shared

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"staffhub/internal/transport/http/api"
	"staffhub/internal/transport/http/middleware"
)

// PathID reads a UUID route parameter. A malformed value gets a 400 here,
// before any store hands it to a uuid column.
func PathID(w http.ResponseWriter, r *http.Request, param string) (string, bool) {
	id := chi.URLParam(r, param)
	if uuid.Validate(id) != nil {
		api.Fail(w, http.StatusBadRequest, "invalid "+param, middleware.GetRequestID(r.Context()))
		return "", false
	}
	return id, true
}
