// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound request payloads before they reach the
// service layer.
//
// The Validator interface validates arbitrary values and supports optional
// field-level scoping. DTOValidator is the implementation used by the HTTP
// handlers; it reads `validate` struct tags from the models package.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
