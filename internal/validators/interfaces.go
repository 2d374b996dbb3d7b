// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks blog payloads before they reach a service.
//
// Every operation has a Schema listing the constraints on its fields.
// Checking a payload produces a tagged Result: valid with the payload, or
// invalid with the Issues found. [BlogValidator] dispatches a payload to its
// schema and turns an invalid result into an error wrapping
// [ErrInvalidPayload] and the Issues.
package validators

import "context"

// Validator checks a payload. When fields are given only those fields are
// checked.
type Validator interface {
	Validate(ctx context.Context, payload any, fields ...string) error
}
