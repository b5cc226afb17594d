package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// AccessTokenCookie is the name of the HTTP-only cookie carrying the session
// token.
const AccessTokenCookie = "access_token"

type cookieSettings struct {
	maxAge time.Duration
	secure bool
}

func (c cookieSettings) tokenCookie(token models.Token) *http.Cookie {
	return &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(c.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (c cookieSettings) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// setSession hands the token to the client both as the session cookie and
// as a bearer header for non-browser callers.
func (h *Handler) setSession(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, h.cookie.tokenCookie(token))
	w.Header().Set("Authorization", "Bearer "+token.SignedString)
}

func (h *Handler) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, h.cookie.expiredCookie())
}

// tokenFromRequest returns the raw session token. The cookie wins over the
// Authorization header; an empty string means no token was presented.
func tokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", nil
	}

	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}
