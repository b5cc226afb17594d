package models

import "encoding/json"

// Credentials is the request body of POST /signup and POST /login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupResponse is returned with 201 Created after a successful signup.
type SignupResponse struct {
	Email string `json:"email"`
	ID    int64  `json:"id"`
}

// LoginResponse is returned with 200 OK after a successful login.
type LoginResponse struct {
	Email string `json:"email"`
}

// ProfileResponse describes the currently authenticated account.
type ProfileResponse struct {
	Email string `json:"email"`
	ID    int64  `json:"id"`
}

// CreateNoteRequest is the request body of POST /createNewNote.
type CreateNoteRequest struct {
	Content json.RawMessage `json:"content"`
}

// CreateNoteResponse carries the identifier of a freshly created note.
type CreateNoteResponse struct {
	ID int64 `json:"id"`
}

// EditNoteRequest is the request body of POST /editNote.
type EditNoteRequest struct {
	ID      int64           `json:"id"`
	Content json.RawMessage `json:"content"`
}

// DeleteNoteRequest is the request body of POST /deleteNote.
type DeleteNoteRequest struct {
	ID int64 `json:"id"`
}
