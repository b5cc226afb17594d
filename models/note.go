// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Note is a user-owned JSON document.
//
// Content is stored as-is: a title/body pair, an editor document or any
// other valid JSON value. The owner (UserID) is fixed at creation time.
type Note struct {
	// NoteID is the server-assigned identifier, exposed to clients as saveId.
	NoteID int64 `json:"saveId"`

	// UserID is the owner of the note. It is never sent to clients.
	UserID int64 `json:"-"`

	// Content is the raw JSON payload of the note.
	Content json.RawMessage `json:"content"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
