// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

type noteService struct {
	noteRepository store.NoteRepository
	now            func() time.Time

	logger *logger.Logger
}

// NewNoteService returns the core NoteService. Input is expected to be
// validated already; see NewNoteValidationService.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		now:            time.Now,
		logger:         logger,
	}
}

func (n *noteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	now := n.now().UTC()
	note.NoteID = 0
	note.CreatedAt = now
	note.UpdatedAt = now

	created, err := n.noteRepository.CreateNote(ctx, note)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", note.UserID).Msg("note creation failed")
		return models.Note{}, fmt.Errorf("note creation failed: %w", err)
	}

	return created, nil
}

func (n *noteService) EditNote(ctx context.Context, note models.Note) error {
	note.UpdatedAt = n.now().UTC()

	err := n.noteRepository.UpdateNote(ctx, note)
	return n.mapOwnedError(ctx, err, "note update failed")
}

func (n *noteService) DeleteNote(ctx context.Context, noteID, userID int64) error {
	err := n.noteRepository.DeleteNote(ctx, noteID, userID)
	return n.mapOwnedError(ctx, err, "note deletion failed")
}

func (n *noteService) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	notes, err := n.noteRepository.ListNotes(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("listing notes failed")
		return nil, fmt.Errorf("listing notes failed: %w", err)
	}
	if notes == nil {
		notes = []models.Note{}
	}

	return notes, nil
}

// mapOwnedError folds "not found" and "owned by someone else" into ErrNotFound.
func (n *noteService) mapOwnedError(ctx context.Context, err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNoteNotFound):
		return ErrNotFound
	default:
		logger.FromContext(ctx).Err(err).Msg(msg)
		return fmt.Errorf("%s: %w", msg, err)
	}
}
