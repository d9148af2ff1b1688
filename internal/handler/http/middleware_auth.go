package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-library-keeper/internal/app"
	"github.com/MKhiriev/go-library-keeper/internal/logger"
	"github.com/MKhiriev/go-library-keeper/internal/utils"
)

type subjectCtxKey struct{}

// withAuth requires a bearer JWT signed with the configured key. It is a
// pass-through when no key is configured.
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.auth.SignKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, app.MsgMissingToken, http.StatusUnauthorized)
			return
		}

		subject, err := utils.ValidateAndParseJWTToken(tokenString, h.auth.SignKey, h.auth.Issuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), subjectCtxKey{}, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
