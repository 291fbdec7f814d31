// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Authorization header failures. Each one is answered with 401 and its text.
var (
	// ErrEmptyAuthorizationHeader means the header is absent.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header has no token part.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken means the scheme is followed by an empty token.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
