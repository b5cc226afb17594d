package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	userColumns = []string{"user_id", "email", "password_hash", "created_at"}
	noteColumns = []string{"note_id", "user_id", "content", "created_at", "updated_at"}
)

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(models.User{}.TableName()).
		Columns("email", "password_hash", "created_at").
		Values(user.Email, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreateNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	query, args, err := b.
		Insert(models.Note{}.TableName()).
		Columns("user_id", "content", "created_at", "updated_at").
		Values(note.UserID, string(note.Content), note.CreatedAt, note.UpdatedAt).
		Suffix("RETURNING note_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateNoteQuery matches on both note_id and user_id so a foreign
// note is indistinguishable from a missing one.
func buildUpdateNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	query, args, err := b.
		Update(models.Note{}.TableName()).
		Set("content", string(note.Content)).
		Set("updated_at", note.UpdatedAt).
		Where(sq.Eq{"note_id": note.NoteID}).
		Where(sq.Eq{"user_id": note.UserID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, noteID, userID int64) (string, []any, error) {
	query, args, err := b.
		Delete(models.Note{}.TableName()).
		Where(sq.Eq{"note_id": noteID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListNotesQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	query, args, err := b.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("note_id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
