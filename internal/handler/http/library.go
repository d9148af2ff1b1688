package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-library-keeper/internal/app"
	"github.com/MKhiriev/go-library-keeper/internal/logger"
	"github.com/MKhiriev/go-library-keeper/internal/service"
	"github.com/MKhiriev/go-library-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

type listResponse struct {
	Version uint64 `json:"version"`
	Total   int    `json:"total"`
	Items   any    `json:"items"`
}

// listItems returns the cached library, optionally filtered by the q query
// parameter. regex=true treats q as a regular expression.
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query := r.URL.Query().Get("q")
	useRegex, _ := strconv.ParseBool(r.URL.Query().Get("regex"))

	items := h.library.Items()
	rows, err := service.FilterItems(items, query, useRegex)
	if err != nil {
		log.Err(err).Str("query", query).Msg("invalid filter")
		utils.WriteError(w, app.MsgInvalidFilter+": "+err.Error(), http.StatusBadRequest)
		return
	}

	if _, err = utils.WriteJSON(w, listResponse{
		Version: h.library.Version(),
		Total:   len(items),
		Items:   rows,
	}, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write library response")
	}
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, ok := h.library.Find(id)
	if !ok {
		utils.WriteError(w, app.MsgItemNotFound, http.StatusNotFound)
		return
	}

	if _, err := utils.WriteJSON(w, item, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write item response")
	}
}

// reload refetches the library from the executor. A failure keeps the
// previous cache and is reported as 502.
func (h *Handler) reload(w http.ResponseWriter, r *http.Request) {
	if err := h.library.Reload(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("reload requested over http failed")
		utils.WriteError(w, app.MsgReloadFailed+": "+err.Error(), http.StatusBadGateway)
		return
	}

	_, _ = utils.WriteJSON(w, map[string]uint64{"version": h.library.Version()}, http.StatusOK)
}
