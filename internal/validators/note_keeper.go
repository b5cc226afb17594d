package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldEmail targets the account email.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password supplied at signup.
	FieldPassword = "password"

	// FieldUserID targets the owner identifier of a note.
	FieldUserID = "user_id"

	// FieldNoteID targets the note identifier in edit and delete requests.
	FieldNoteID = "note_id"

	// FieldContent targets the JSON payload of a note.
	FieldContent = "content"
)

const (
	// MinPasswordLength is counted in characters.
	MinPasswordLength = 6
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NoteKeeperValidator validates credentials and note payloads.
type NoteKeeperValidator struct {
}

func NewNoteKeeperValidator() Validator {
	return &NoteKeeperValidator{}
}

func (v *NoteKeeperValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.Note:
		return v.validateNote(value, fields...)
	case *models.Note:
		return v.validateNote(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteKeeperValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !emailPattern.MatchString(creds.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if utf8.RuneCountInString(creds.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
			if len(creds.Password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteKeeperValidator) validateNote(note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if note.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldNoteID:
			if note.NoteID <= 0 {
				return ErrInvalidNoteID
			}
		case FieldContent:
			content := bytes.TrimSpace(note.Content)
			if len(content) == 0 || bytes.Equal(content, []byte("null")) {
				return ErrEmptyContent
			}
			if !json.Valid(content) {
				return ErrInvalidContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
