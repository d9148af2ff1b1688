package http

import (
	"net/http"

	"github.com/MKhiriev/go-library-keeper/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, map[string]any{
		"status":  "ok",
		"version": h.library.Version(),
		"items":   len(h.library.Items()),
	}, http.StatusOK)
}

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.build.String()))
}
