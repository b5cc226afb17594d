package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errorResponse
	}{
		{"invalid json", fmt.Errorf("%w: unexpected EOF", ErrInvalidJSON), errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
		{"invalid input", fmt.Errorf("%w: bad email", service.ErrInvalidInput), errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
		{"conflict", service.ErrConflict, errorResponse{http.StatusConflict, app.MsgEmailAlreadyExists}},
		{"expired token wins over unauthorized", service.ErrTokenExpired, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpired}},
		{"invalid token", service.ErrTokenInvalid, errorResponse{http.StatusUnauthorized, app.MsgUnauthorized}},
		{"missing token", service.ErrTokenMissing, errorResponse{http.StatusUnauthorized, app.MsgUnauthorized}},
		{"bad credentials", service.ErrUnauthorized, errorResponse{http.StatusUnauthorized, app.MsgInvalidEmailPassword}},
		{"no principal", ErrNoPrincipal, errorResponse{http.StatusUnauthorized, app.MsgUnauthorized}},
		{"not found", service.ErrNotFound, errorResponse{http.StatusNotFound, app.MsgNoteNotFound}},
		{"unknown", errors.New("boom"), errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, responseFromError(tt.err))
			assert.Equal(t, tt.want.status, statusFromError(tt.err))
		})
	}
}
