// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks change-feed input before it reaches storage:
// zone and record identity, record shape and account fields.
package validators

import "context"

// Validator checks v. Fields, when given, limit the check to the named
// parts of v.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
