// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteRepository is the SQL implementation of [NoteRepository] over the
// "notes" table. Ownership is enforced in the WHERE clause of every
// mutating statement.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateNoteQuery(r.db.builder, note)
	if err != nil {
		return models.Note{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&note.NoteID); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error inserting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return note, nil
}

func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note) error {
	query, args, err := buildUpdateNoteQuery(r.db.builder, note)
	if err != nil {
		return err
	}

	return r.execOwned(ctx, "*noteRepository.UpdateNote", query, args)
}

func (r *noteRepository) DeleteNote(ctx context.Context, noteID, userID int64) error {
	query, args, err := buildDeleteNoteQuery(r.db.builder, noteID, userID)
	if err != nil {
		return err
	}

	return r.execOwned(ctx, "*noteRepository.DeleteNote", query, args)
}

// execOwned runs an owner-scoped statement and maps zero affected rows to
// [ErrNoteNotFound].
func (r *noteRepository) execOwned(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func (r *noteRepository) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(r.db.builder, userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error selecting notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var (
			note    models.Note
			content []byte
		)
		if err = rows.Scan(&note.NoteID, &note.UserID, &content, &note.CreatedAt, &note.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error scanning note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		note.Content = json.RawMessage(content)
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error iterating note rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}
