package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=mock/service_mock.go -package=mock

// AuthService owns accounts and the session token lifecycle.
type AuthService interface {
	// Signup validates credentials, stores a new account with a hashed
	// password and returns it. Fails with ErrInvalidInput or ErrConflict.
	Signup(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login returns the account matching creds. Unknown email and wrong
	// password both fail with ErrUnauthorized.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// CreateToken issues a signed access token for user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies a raw token. Fails with ErrTokenMissing,
	// ErrTokenExpired or ErrTokenInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ResolvePrincipal returns the account a raw token was issued to.
	ResolvePrincipal(ctx context.Context, tokenString string) (models.User, error)

	// Logout revokes a raw token. Missing or already unusable tokens are
	// not an error.
	Logout(ctx context.Context, tokenString string) error
}

// NoteService manages notes of the current principal. Every operation is
// scoped by the owner id; a note of another user is reported as ErrNotFound.
type NoteService interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	EditNote(ctx context.Context, note models.Note) error
	DeleteNote(ctx context.Context, noteID, userID int64) error
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}

// AppInfoService reports build and health information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	CheckHealth(ctx context.Context) error
}
