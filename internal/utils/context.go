// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, JWT token generation and validation,
// and unique id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key used to store the authenticated user in the
// context. Use [WithPrincipal] and [PrincipalFromContext] instead of
// accessing it directly.
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying the authenticated user.
// The password hash is stripped before the user is attached.
func WithPrincipal(ctx context.Context, user models.User) context.Context {
	user.PasswordHash = ""
	user.Password = ""
	return context.WithValue(ctx, PrincipalCtxKey, user)
}

// PrincipalFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true : a principal is attached
//   - ok == false: the request is anonymous or the value has an unexpected type
//
// Example usage:
//
//	user, ok := utils.PrincipalFromContext(ctx)
//	if !ok {
//	    // handle anonymous request
//	}
func PrincipalFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(PrincipalCtxKey).(models.User)
	return user, ok
}
