package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var creds models.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		writeError(w, r, err, "invalid signup request")
		return
	}

	user, err := h.services.AuthService.Signup(ctx, creds)
	if err != nil {
		writeError(w, r, err, "signup failed")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	h.setSession(w, token)
	utils.WriteJSON(w, models.SignupResponse{Email: user.Email, ID: user.UserID}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		writeError(w, r, err, "invalid login request")
		return
	}

	user, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeError(w, r, err, "login failed")
		return
	}

	log.Debug().Int64("user_id", user.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	h.setSession(w, token)
	utils.WriteJSON(w, models.LoginResponse{Email: user.Email}, http.StatusOK)
}

// logout never requires a valid session: the cookie is cleared either way.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	tokenString, err := tokenFromRequest(r)
	if err != nil {
		log.Debug().Err(err).Msg("logout without a usable token")
	}

	if err = h.services.AuthService.Logout(r.Context(), tokenString); err != nil {
		writeError(w, r, err, "logout failed")
		return
	}

	h.clearSession(w)
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgLoggedOut}, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoPrincipal, "profile requested without principal")
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Email: user.Email, ID: user.UserID}, http.StatusOK)
}
