// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for accounts, notes and revoked
// access tokens.
//
// Accounts and notes live in a SQL database (PostgreSQL through pgx, or
// SQLite through go-sqlite3). Revoked token ids live in Redis when it is
// configured and in process memory otherwise.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts. Email is unique across all accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with the assigned
	// UserID. Returns [ErrEmailAlreadyExists] when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account with the given email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// NoteRepository persists notes. Every mutating method is scoped by owner:
// a note that exists but belongs to another user is reported exactly like a
// note that does not exist.
type NoteRepository interface {
	// CreateNote inserts a note and returns it with the assigned NoteID.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// UpdateNote overwrites the content of note.NoteID when it is owned by
	// note.UserID. Returns [ErrNoteNotFound] otherwise.
	UpdateNote(ctx context.Context, note models.Note) error

	// DeleteNote removes noteID when it is owned by userID. Returns
	// [ErrNoteNotFound] otherwise.
	DeleteNote(ctx context.Context, noteID, userID int64) error

	// ListNotes returns all notes of userID ordered by NoteID.
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)
}

// TokenBlocklist keeps ids of access tokens revoked before their expiry.
type TokenBlocklist interface {
	// Revoke marks tokenID as revoked until expiresAt. Entries past their
	// expiry may be dropped since the token is rejected anyway.
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error

	// IsRevoked reports whether tokenID was revoked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Pinger checks connectivity of a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}
