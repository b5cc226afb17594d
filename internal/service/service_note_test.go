package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

func newTestNoteSvc(t *testing.T, ctrl *gomock.Controller) (*noteService, *mock.MockNoteRepository) {
	t.Helper()
	repo := mock.NewMockNoteRepository(ctrl)
	svc := NewNoteService(repo, logger.Nop()).(*noteService)
	svc.now = func() time.Time { return t0 }
	return svc, repo
}

func TestNoteService_CreateNote_SetsTimestamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateNote(ctx, models.Note{
		UserID:    1,
		Content:   json.RawMessage(`{"title":"t"}`),
		CreatedAt: t0,
		UpdatedAt: t0,
	}).DoAndReturn(func(_ context.Context, n models.Note) (models.Note, error) {
		n.NoteID = 1
		return n, nil
	})

	// a client supplied id is ignored
	note, err := svc.CreateNote(ctx, models.Note{NoteID: 77, UserID: 1, Content: json.RawMessage(`{"title":"t"}`)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), note.NoteID)
}

func TestNoteService_CreateNote_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)

	repo.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return(models.Note{}, store.ErrExecutingStatement)

	_, err := svc.CreateNote(context.Background(), models.Note{UserID: 1, Content: json.RawMessage(`"x"`)})
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}

func TestNoteService_EditNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)
	ctx := context.Background()
	note := models.Note{NoteID: 2, UserID: 1, Content: json.RawMessage(`"x"`)}

	edited := note
	edited.UpdatedAt = t0
	repo.EXPECT().UpdateNote(ctx, edited).Return(nil)
	assert.NoError(t, svc.EditNote(ctx, note))

	repo.EXPECT().UpdateNote(ctx, gomock.Any()).Return(store.ErrNoteNotFound)
	assert.ErrorIs(t, svc.EditNote(ctx, note), ErrNotFound)

	repo.EXPECT().UpdateNote(ctx, gomock.Any()).Return(store.ErrExecutingStatement)
	err := svc.EditNote(ctx, note)
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestNoteService_DeleteNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().DeleteNote(ctx, int64(2), int64(1)).Return(nil)
	assert.NoError(t, svc.DeleteNote(ctx, 2, 1))

	repo.EXPECT().DeleteNote(ctx, int64(2), int64(9)).Return(store.ErrNoteNotFound)
	assert.ErrorIs(t, svc.DeleteNote(ctx, 2, 9), ErrNotFound)
}

func TestNoteService_ListNotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().ListNotes(ctx, int64(1)).Return(nil, nil)
	notes, err := svc.ListNotes(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)

	repo.EXPECT().ListNotes(ctx, int64(1)).Return(nil, store.ErrExecutingQuery)
	_, err = svc.ListNotes(ctx, 1)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── validation wrapper ───────────────────────────────────────────────────────

func newValidatedNoteSvc(ctrl *gomock.Controller) (NoteService, *mock.MockNoteRepository) {
	repo := mock.NewMockNoteRepository(ctrl)
	svc := NewNoteValidationService(validators.NewNoteKeeperValidator()).
		Wrap(NewNoteService(repo, logger.Nop()))
	return svc, repo
}

func TestNoteValidationService_RejectsBeforeWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newValidatedNoteSvc(ctrl)
	ctx := context.Background()

	// the repository mock has no expectations, so reaching it fails the test
	_, err := svc.CreateNote(ctx, models.Note{UserID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateNote(ctx, models.Note{UserID: 1, Content: json.RawMessage(`{broken`)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateNote(ctx, models.Note{Content: json.RawMessage(`"x"`)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.ErrorIs(t, svc.EditNote(ctx, models.Note{NoteID: 1, UserID: 1, Content: json.RawMessage(`null`)}), ErrInvalidInput)
	assert.ErrorIs(t, svc.EditNote(ctx, models.Note{NoteID: 0, UserID: 1, Content: json.RawMessage(`"x"`)}), ErrNotFound)
	assert.ErrorIs(t, svc.DeleteNote(ctx, -1, 1), ErrNotFound)
	assert.ErrorIs(t, svc.DeleteNote(ctx, 1, 0), ErrInvalidInput)

	_, err = svc.ListNotes(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNoteValidationService_PassesValidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newValidatedNoteSvc(ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateNote(ctx, gomock.Any()).Return(models.Note{NoteID: 1, UserID: 1}, nil)
	repo.EXPECT().UpdateNote(ctx, gomock.Any()).Return(nil)
	repo.EXPECT().DeleteNote(ctx, int64(1), int64(1)).Return(nil)
	repo.EXPECT().ListNotes(ctx, int64(1)).Return([]models.Note{{NoteID: 1, UserID: 1}}, nil)

	_, err := svc.CreateNote(ctx, models.Note{UserID: 1, Content: json.RawMessage(`{"title":"t","body":"b"}`)})
	require.NoError(t, err)
	require.NoError(t, svc.EditNote(ctx, models.Note{NoteID: 1, UserID: 1, Content: json.RawMessage(`"x"`)}))
	require.NoError(t, svc.DeleteNote(ctx, 1, 1))
	notes, err := svc.ListNotes(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}
