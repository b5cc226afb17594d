// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading the session token and the request
// body. Callers can match against them with [errors.Is].
var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoPrincipal is returned by protected handlers reached without the
	// auth middleware having stored an account in the request context.
	ErrNoPrincipal = errors.New("no authenticated user in request context")

	// ErrInvalidJSON is returned when a request body is not valid JSON for
	// the expected payload or exceeds the body size limit.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
