package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInit_RegisteredRoutes(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	var got []string
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got = append(got, method+" "+route)
		return nil
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"POST /signup",
		"POST /login",
		"POST /logout",
		"GET /api/version",
		"GET /healthz",
		"POST /createNewNote",
		"POST /editNote",
		"POST /deleteNote",
		"GET /api/profile",
		"GET /api/notes",
	}, got)
}

func TestInit_ProtectedRoutesRequireSession(t *testing.T) {
	protected := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/createNewNote"},
		{http.MethodPost, "/editNote"},
		{http.MethodPost, "/deleteNote"},
		{http.MethodGet, "/api/profile"},
		{http.MethodGet, "/api/notes"},
	}

	for _, p := range protected {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.auth.EXPECT().ResolvePrincipal(gomock.Any(), "").Return(models.User{}, service.ErrTokenMissing)

			rr := httptest.NewRecorder()
			h.Init().ServeHTTP(rr, httptest.NewRequest(p.method, p.path, strings.NewReader(`{}`)))

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.JSONEq(t, `{"error":"unauthorized"}`, rr.Body.String())
		})
	}
}

func TestInit_ProfileThroughRouter(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().ResolvePrincipal(gomock.Any(), "cookie-token").Return(testUser, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"email":"alice@example.com","id":1}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_UnknownRouteAndWrongMethod(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/does-not-exist", nil),
		httptest.NewRequest(http.MethodGet, "/signup", nil),
		httptest.NewRequest(http.MethodPost, "/api/notes", nil),
	} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code, req.Method+" "+req.URL.Path)
		assert.JSONEq(t, `{"error":"not found"}`, rr.Body.String())
	}
}

func TestInit_CORSPreflight(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/login", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
}

func TestInit_CORSRejectsUnknownOrigin(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/login", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestInit_RecoversFromPanic(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).DoAndReturn(func(context.Context) string {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
