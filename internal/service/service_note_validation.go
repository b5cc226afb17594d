package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteValidationService rejects malformed input before it reaches the
// wrapped NoteService, so an invalid request never causes a write.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService(validator validators.Validator) NoteServiceWrapper {
	return &NoteValidationService{
		validator: validator,
	}
}

func (v *NoteValidationService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if err := v.validator.Validate(ctx, note, validators.FieldUserID, validators.FieldContent); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.CreateNote(ctx, note)
}

func (v *NoteValidationService) EditNote(ctx context.Context, note models.Note) error {
	if err := v.validator.Validate(ctx, note, validators.FieldUserID, validators.FieldContent); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	// a non-positive id cannot name an owned note
	if err := v.validator.Validate(ctx, note, validators.FieldNoteID); err != nil {
		return ErrNotFound
	}

	return v.inner.EditNote(ctx, note)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, noteID, userID int64) error {
	note := models.Note{NoteID: noteID, UserID: userID}
	if err := v.validator.Validate(ctx, note, validators.FieldUserID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := v.validator.Validate(ctx, note, validators.FieldNoteID); err != nil {
		return ErrNotFound
	}

	return v.inner.DeleteNote(ctx, noteID, userID)
}

func (v *NoteValidationService) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	if err := v.validator.Validate(ctx, models.Note{UserID: userID}, validators.FieldUserID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.ListNotes(ctx, userID)
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}
