package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail     = errors.New("invalid email")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
	ErrPasswordTooLong  = errors.New("password must be at most 72 bytes long")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidNoteID    = errors.New("invalid note ID")
	ErrEmptyContent     = errors.New("note content is required")
	ErrInvalidContent   = errors.New("note content must be valid JSON")
)
