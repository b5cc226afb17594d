// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before the services act on
// them: credential format on signup, note ownership ids and JSON content on
// note writes.
//
// Validators return sentinel errors from errors.go. Services wrap them into
// their own ErrInvalidInput or ErrNotFound, so no write happens for an
// invalid payload.
package validators

import "context"

// Validator validates a payload. Passing field names restricts the check to
// those fields; with none, the payload type's default field set is used.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
