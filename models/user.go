// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that owns notes.
// The plaintext password only travels from the request decoder to the
// hasher and is never persisted or serialized back to clients.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique, case-sensitive login identifier.
	Email string `json:"email"`

	// Password is the plaintext password received on signup or login.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the users table.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
