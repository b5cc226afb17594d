package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// auth is an HTTP middleware that resolves the session token into the
// account it was issued for.
//
// The token is taken from the access_token cookie, or from an
// "Authorization: Bearer" header when no cookie is sent. It is resolved via
// [service.AuthService.ResolvePrincipal]; on success the account is stored in
// the request context (see [utils.PrincipalFromContext]) and the request
// logger is enriched with the user id.
//
// The middleware rejects requests with HTTP 401 Unauthorized when no token is
// presented, the header is malformed, or the token is expired, forged,
// revoked or issued to an unknown account. Storage failures during
// resolution are reported as 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenString, err := tokenFromRequest(r)
		if err != nil {
			writeError(w, r, err, "session token could not be read")
			return
		}

		user, err := h.services.AuthService.ResolvePrincipal(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, "session could not be resolved")
			return
		}

		l := logger.FromContext(ctx).With().Int64("user_id", user.UserID).Logger()
		ctx = l.WithContext(ctx)
		ctx = utils.WithPrincipal(ctx, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
