package http

import (
	"net/http"

	"github.com/MKhiriev/go-library-keeper/internal/utils"
)

// withResponseHashing signs response bodies with the configured hash key in
// the HashSHA256 header. It is a pass-through when no key is configured.
func (h *Handler) withResponseHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.hasher.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		bw := &bufferedWriter{ResponseWriter: w}
		next.ServeHTTP(bw, r)

		w.Header().Set(utils.HashHeader, h.hasher.SumHex(bw.body.Bytes()))
		if err := bw.flush(); err != nil {
			h.logger.Err(err).Msg("failed to write signed response")
		}
	})
}
