package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var owner = models.User{UserID: 7, Email: "owner@example.com"}

// ---- createNote ----

func TestCreateNote_OK(t *testing.T) {
	h, m := newTestHandler(t)

	content := json.RawMessage(`{"title":"t","body":"b"}`)
	m.notes.EXPECT().
		CreateNote(gomock.Any(), models.Note{UserID: owner.UserID, Content: content}).
		Return(models.Note{NoteID: 1, UserID: owner.UserID, Content: content}, nil)

	req := newJSONRequest(t, http.MethodPost, "/createNewNote", `{"content":{"title":"t","body":"b"}}`)
	rr := httptest.NewRecorder()
	h.createNote(rr, withPrincipal(req, owner))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.CreateNoteResponse{ID: 1}, decodeBody[models.CreateNoteResponse](t, rr))
}

func TestCreateNote_Errors(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		withPrincipal bool
		setup         func(m testMocks)
		wantStatus    int
	}{
		{
			name:       "no principal",
			body:       `{"content":{}}`,
			setup:      func(m testMocks) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:          "malformed JSON",
			body:          `{"content":`,
			withPrincipal: true,
			setup:         func(m testMocks) {},
			wantStatus:    http.StatusBadRequest,
		},
		{
			name:          "empty content",
			body:          `{}`,
			withPrincipal: true,
			setup: func(m testMocks) {
				m.notes.EXPECT().CreateNote(gomock.Any(), gomock.Any()).
					Return(models.Note{}, fmt.Errorf("%w: empty content", service.ErrInvalidInput))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:          "storage failure",
			body:          `{"content":{"title":"t"}}`,
			withPrincipal: true,
			setup: func(m testMocks) {
				m.notes.EXPECT().CreateNote(gomock.Any(), gomock.Any()).
					Return(models.Note{}, errors.New("disk full"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			tt.setup(m)

			req := newJSONRequest(t, http.MethodPost, "/createNewNote", tt.body)
			if tt.withPrincipal {
				req = withPrincipal(req, owner)
			}

			rr := httptest.NewRecorder()
			h.createNote(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestCreateNote_BodyTooLarge(t *testing.T) {
	h, _ := newTestHandler(t)

	body := `{"content":"` + strings.Repeat("a", maxRequestBodyBytes) + `"}`
	req := withPrincipal(newJSONRequest(t, http.MethodPost, "/createNewNote", body), owner)

	rr := httptest.NewRecorder()
	h.createNote(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ---- editNote ----

func TestEditNote(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantBody   any
	}{
		{
			name:       "updated",
			wantStatus: http.StatusOK,
			wantBody:   models.MessageResponse{Message: app.MsgNoteUpdated},
		},
		{
			name:       "missing or foreign note",
			serviceErr: service.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   models.ErrorResponse{Error: app.MsgNoteNotFound},
		},
		{
			name:       "invalid content",
			serviceErr: fmt.Errorf("%w: invalid content", service.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantBody:   models.ErrorResponse{Error: app.MsgInvalidDataProvided},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)

			m.notes.EXPECT().
				EditNote(gomock.Any(), models.Note{NoteID: 3, UserID: owner.UserID, Content: json.RawMessage(`{"body":"new"}`)}).
				Return(tt.serviceErr)

			req := newJSONRequest(t, http.MethodPost, "/editNote", `{"id":3,"content":{"body":"new"}}`)
			rr := httptest.NewRecorder()
			h.editNote(rr, withPrincipal(req, owner))

			require.Equal(t, tt.wantStatus, rr.Code)
			want, err := json.Marshal(tt.wantBody)
			require.NoError(t, err)
			assert.JSONEq(t, string(want), rr.Body.String())
		})
	}
}

func TestEditNote_NoPrincipal(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.editNote(rr, newJSONRequest(t, http.MethodPost, "/editNote", `{"id":3,"content":{}}`))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// ---- deleteNote ----

func TestDeleteNote(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusOK},
		{name: "missing or foreign note", serviceErr: service.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "storage failure", serviceErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.notes.EXPECT().DeleteNote(gomock.Any(), int64(5), owner.UserID).Return(tt.serviceErr)

			req := newJSONRequest(t, http.MethodPost, "/deleteNote", models.DeleteNoteRequest{ID: 5})
			rr := httptest.NewRecorder()
			h.deleteNote(rr, withPrincipal(req, owner))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestDeleteNote_MalformedJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	req := newJSONRequest(t, http.MethodPost, "/deleteNote", `{"id":"five"}`)
	rr := httptest.NewRecorder()
	h.deleteNote(rr, withPrincipal(req, owner))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ---- listNotes ----

func TestListNotes_OK(t *testing.T) {
	h, m := newTestHandler(t)

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m.notes.EXPECT().ListNotes(gomock.Any(), owner.UserID).Return([]models.Note{
		{NoteID: 1, UserID: owner.UserID, Content: json.RawMessage(`{"title":"a"}`), CreatedAt: created, UpdatedAt: created},
		{NoteID: 2, UserID: owner.UserID, Content: json.RawMessage(`"plain"`), CreatedAt: created, UpdatedAt: created},
	}, nil)

	rr := httptest.NewRecorder()
	h.listNotes(rr, withPrincipal(newJSONRequest(t, http.MethodGet, "/api/notes", nil), owner))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"notes":[
		{"saveId":1,"content":{"title":"a"},"createdAt":"2026-01-02T03:04:05Z","updatedAt":"2026-01-02T03:04:05Z"},
		{"saveId":2,"content":"plain","createdAt":"2026-01-02T03:04:05Z","updatedAt":"2026-01-02T03:04:05Z"}
	]}`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "user")
}

func TestListNotes_EmptyIsArray(t *testing.T) {
	h, m := newTestHandler(t)
	m.notes.EXPECT().ListNotes(gomock.Any(), owner.UserID).Return(nil, nil)

	rr := httptest.NewRecorder()
	h.listNotes(rr, withPrincipal(newJSONRequest(t, http.MethodGet, "/api/notes", nil), owner))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"notes":[]}`, rr.Body.String())
}

func TestListNotes_StorageFailure(t *testing.T) {
	h, m := newTestHandler(t)
	m.notes.EXPECT().ListNotes(gomock.Any(), owner.UserID).Return(nil, errors.New("boom"))

	rr := httptest.NewRecorder()
	h.listNotes(rr, withPrincipal(newJSONRequest(t, http.MethodGet, "/api/notes", nil), owner))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rr.Body.String())
}
