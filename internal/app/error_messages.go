// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// note keeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation (malformed email, short password, empty
	// or invalid note content).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned for an unknown email and for a
	// wrong password alike.
	MsgInvalidEmailPassword = "invalid email or password"

	// MsgEmailAlreadyExists is returned when signup is attempted with an
	// email that already belongs to an account.
	MsgEmailAlreadyExists = "email already exists"

	// MsgUnauthorized is returned when a protected route is called without
	// a valid session.
	MsgUnauthorized = "unauthorized"

	// MsgTokenIsExpired is returned when the session token is well-formed
	// but past its expiry.
	MsgTokenIsExpired = "token is expired"

	// MsgNoteNotFound is returned when a note does not exist or belongs to
	// another account.
	MsgNoteNotFound = "note not found"

	// MsgNotFound is written for unknown routes and unsupported methods.
	MsgNotFound = "not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgServiceUnavailable is the health status reported when the database
	// cannot be reached.
	MsgServiceUnavailable = "unavailable"

	MsgOK          = "ok"
	MsgLoggedOut   = "logged out"
	MsgNoteUpdated = "note updated"
	MsgNoteDeleted = "note deleted"
)
