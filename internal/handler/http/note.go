// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// createNote handles POST /createNewNote.
//
// The note is always created for the authenticated account; any owner
// information in the body is ignored.
//
// Responses:
//   - 200 OK with {"id": <saveId>} on success.
//   - 400 Bad Request for malformed JSON or empty/invalid content.
//   - 401 Unauthorized when the principal is missing.
//   - 500 Internal Server Error on storage failures.
func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.PrincipalFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoPrincipal, "note creation without principal")
		return
	}

	var req models.CreateNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "invalid create note request")
		return
	}

	note, err := h.services.NoteService.CreateNote(ctx, models.Note{
		UserID:  user.UserID,
		Content: req.Content,
	})
	if err != nil {
		writeError(w, r, err, "note creation failed")
		return
	}

	logger.FromRequest(r).Debug().Int64("note_id", note.NoteID).Msg("note created")
	utils.WriteJSON(w, models.CreateNoteResponse{ID: note.NoteID}, http.StatusOK)
}

// editNote handles POST /editNote. A note of another account is reported
// as 404, exactly like a missing one.
func (h *Handler) editNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.PrincipalFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoPrincipal, "note edit without principal")
		return
	}

	var req models.EditNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "invalid edit note request")
		return
	}

	err := h.services.NoteService.EditNote(ctx, models.Note{
		NoteID:  req.ID,
		UserID:  user.UserID,
		Content: req.Content,
	})
	if err != nil {
		writeError(w, r, err, "note edit failed")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgNoteUpdated}, http.StatusOK)
}

// deleteNote handles POST /deleteNote with the same ownership rules as
// editNote.
func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.PrincipalFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoPrincipal, "note deletion without principal")
		return
	}

	var req models.DeleteNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "invalid delete note request")
		return
	}

	if err := h.services.NoteService.DeleteNote(ctx, req.ID, user.UserID); err != nil {
		writeError(w, r, err, "note deletion failed")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgNoteDeleted}, http.StatusOK)
}

// listNotes handles GET /api/notes and returns every note of the
// authenticated account, oldest first.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.PrincipalFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoPrincipal, "notes listing without principal")
		return
	}

	notes, err := h.services.NoteService.ListNotes(ctx, user.UserID)
	if err != nil {
		writeError(w, r, err, "notes listing failed")
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}

	utils.WriteJSON(w, models.NotesResponse{Notes: notes}, http.StatusOK)
}
