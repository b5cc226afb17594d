// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the note keeper HTTP API.
//
// The primary abstraction is [NotesClient]. The HTTP implementation
// ([NewHTTPNotesClient]) keeps the session cookie in a per-client cookie jar
// and additionally remembers the bearer token returned on signup and login,
// so it works against the server exactly like a browser does.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrNotFound] for 404).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-note-keeper/models"
)

// NotesClient defines the operations of the note keeper API.
type NotesClient interface {
	// SetToken stores the bearer token attached to subsequent requests in
	// addition to the session cookie.
	SetToken(token string)

	// Token returns the bearer token currently stored, or an empty string.
	Token() string

	// Signup creates an account. On success the client is logged in.
	Signup(ctx context.Context, creds models.Credentials) (models.SignupResponse, error)

	// Login starts a new session for an existing account.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// Logout revokes the current session. It succeeds without a session.
	Logout(ctx context.Context) error

	// Profile returns the account of the current session.
	Profile(ctx context.Context) (models.ProfileResponse, error)

	// CreateNote stores content as a new note and returns its saveId.
	CreateNote(ctx context.Context, content json.RawMessage) (int64, error)

	// EditNote replaces the content of an owned note.
	EditNote(ctx context.Context, noteID int64, content json.RawMessage) error

	// DeleteNote removes an owned note.
	DeleteNote(ctx context.Context, noteID int64) error

	// ListNotes returns every note of the current account.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	// Health reports whether the server can reach its database.
	Health(ctx context.Context) error
}
