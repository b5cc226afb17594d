package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testCreds = models.Credentials{Email: "alice@example.com", Password: "secret1"}
	testUser  = models.User{UserID: 1, Email: "alice@example.com"}
	testToken = models.Token{SignedString: "header.payload.signature"}
)

// ---- signup ----

func TestSignup_Created(t *testing.T) {
	h, m := newTestHandler(t)

	m.auth.EXPECT().Signup(gomock.Any(), testCreds).Return(testUser, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), testUser).Return(testToken, nil)

	rr := httptest.NewRecorder()
	h.signup(rr, newJSONRequest(t, http.MethodPost, "/signup", testCreds))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, models.SignupResponse{Email: "alice@example.com", ID: 1}, decodeBody[models.SignupResponse](t, rr))
	assert.Equal(t, "Bearer "+testToken.SignedString, rr.Header().Get("Authorization"))

	cookie := sessionCookie(t, rr)
	assert.Equal(t, testToken.SignedString, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 1800, cookie.MaxAge)
	assert.False(t, cookie.Secure)
}

func TestSignup_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		setup      func(m testMocks)
		wantStatus int
		wantError  string
	}{
		{
			name:       "malformed JSON",
			body:       `{"email":`,
			setup:      func(m testMocks) {},
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgInvalidDataProvided,
		},
		{
			name: "invalid credentials",
			body: models.Credentials{Email: "not-an-email", Password: "secret1"},
			setup: func(m testMocks) {
				m.auth.EXPECT().Signup(gomock.Any(), gomock.Any()).
					Return(models.User{}, fmt.Errorf("%w: bad email", service.ErrInvalidInput))
			},
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgInvalidDataProvided,
		},
		{
			name: "email already registered",
			body: testCreds,
			setup: func(m testMocks) {
				m.auth.EXPECT().Signup(gomock.Any(), testCreds).Return(models.User{}, service.ErrConflict)
			},
			wantStatus: http.StatusConflict,
			wantError:  app.MsgEmailAlreadyExists,
		},
		{
			name: "storage failure does not leak details",
			body: testCreds,
			setup: func(m testMocks) {
				m.auth.EXPECT().Signup(gomock.Any(), testCreds).
					Return(models.User{}, errors.New("pq: connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  app.MsgInternalServerError,
		},
		{
			name: "token creation failure",
			body: testCreds,
			setup: func(m testMocks) {
				m.auth.EXPECT().Signup(gomock.Any(), testCreds).Return(testUser, nil)
				m.auth.EXPECT().CreateToken(gomock.Any(), testUser).Return(models.Token{}, service.ErrTokenCreationFailed)
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			tt.setup(m)

			rr := httptest.NewRecorder()
			h.signup(rr, newJSONRequest(t, http.MethodPost, "/signup", tt.body))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, models.ErrorResponse{Error: tt.wantError}, decodeBody[models.ErrorResponse](t, rr))
			assert.Empty(t, rr.Result().Cookies())
		})
	}
}

// ---- login ----

func TestLogin_OK(t *testing.T) {
	h, m := newTestHandler(t)

	m.auth.EXPECT().Login(gomock.Any(), testCreds).Return(testUser, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), testUser).Return(testToken, nil)

	rr := httptest.NewRecorder()
	h.login(rr, newJSONRequest(t, http.MethodPost, "/login", testCreds))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.LoginResponse{Email: "alice@example.com"}, decodeBody[models.LoginResponse](t, rr))
	assert.Equal(t, testToken.SignedString, sessionCookie(t, rr).Value)
}

func TestLogin_SecureCookie(t *testing.T) {
	h, m := newTestHandler(t)
	h.cookie.secure = true

	m.auth.EXPECT().Login(gomock.Any(), testCreds).Return(testUser, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), testUser).Return(testToken, nil)

	rr := httptest.NewRecorder()
	h.login(rr, newJSONRequest(t, http.MethodPost, "/login", testCreds))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, sessionCookie(t, rr).Secure)
}

func TestLogin_MalformedJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.login(rr, newJSONRequest(t, http.MethodPost, "/login", "not json"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// Unknown email and wrong password must not be distinguishable.
func TestLogin_UnauthorizedResponsesAreIdentical(t *testing.T) {
	h, m := newTestHandler(t)

	unknown := models.Credentials{Email: "nobody@example.com", Password: "secret1"}
	wrong := models.Credentials{Email: "alice@example.com", Password: "wrong-password"}

	m.auth.EXPECT().Login(gomock.Any(), unknown).Return(models.User{}, service.ErrUnauthorized)
	m.auth.EXPECT().Login(gomock.Any(), wrong).Return(models.User{}, service.ErrUnauthorized)

	rrUnknown := httptest.NewRecorder()
	h.login(rrUnknown, newJSONRequest(t, http.MethodPost, "/login", unknown))

	rrWrong := httptest.NewRecorder()
	h.login(rrWrong, newJSONRequest(t, http.MethodPost, "/login", wrong))

	assert.Equal(t, http.StatusUnauthorized, rrUnknown.Code)
	assert.Equal(t, rrUnknown.Code, rrWrong.Code)
	assert.Equal(t, rrUnknown.Body.String(), rrWrong.Body.String())
	assert.Equal(t, models.ErrorResponse{Error: app.MsgInvalidEmailPassword}, decodeBody[models.ErrorResponse](t, rrWrong))
}

// ---- logout ----

func TestLogout_RevokesCookieToken(t *testing.T) {
	h, m := newTestHandler(t)

	m.auth.EXPECT().Logout(gomock.Any(), "cookie-token").Return(nil)

	req := newJSONRequest(t, http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})

	rr := httptest.NewRecorder()
	h.logout(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.MessageResponse{Message: app.MsgLoggedOut}, decodeBody[models.MessageResponse](t, rr))

	cookie := sessionCookie(t, rr)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
}

func TestLogout_TokenSources(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		wantToken  string
	}{
		{name: "no token at all", wantToken: ""},
		{name: "bearer header", authHeader: "Bearer header-token", wantToken: "header-token"},
		{name: "malformed header is ignored", authHeader: "Token abc def", wantToken: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.auth.EXPECT().Logout(gomock.Any(), tt.wantToken).Return(nil)

			req := newJSONRequest(t, http.MethodPost, "/logout", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rr := httptest.NewRecorder()
			h.logout(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, -1, sessionCookie(t, rr).MaxAge)
		})
	}
}

func TestLogout_RevocationFailure(t *testing.T) {
	h, m := newTestHandler(t)

	m.auth.EXPECT().Logout(gomock.Any(), "cookie-token").Return(errors.New("redis: connection refused"))

	req := newJSONRequest(t, http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})

	rr := httptest.NewRecorder()
	h.logout(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, models.ErrorResponse{Error: app.MsgInternalServerError}, decodeBody[models.ErrorResponse](t, rr))
}

// ---- profile ----

func TestProfile(t *testing.T) {
	h, _ := newTestHandler(t)

	t.Run("with principal", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.profile(rr, withPrincipal(newJSONRequest(t, http.MethodGet, "/api/profile", nil), testUser))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, models.ProfileResponse{Email: "alice@example.com", ID: 1}, decodeBody[models.ProfileResponse](t, rr))
	})

	t.Run("without principal", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.profile(rr, newJSONRequest(t, http.MethodGet, "/api/profile", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
