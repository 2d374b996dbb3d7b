// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header carries the
	// Bearer scheme but no token value.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrNoUserInContext is returned when a protected handler runs without
	// the user id the auth middleware stores in the request context.
	ErrNoUserInContext = errors.New("no authenticated user in request context")

	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)

// notAuthorizedMessage is the body of every rejected protected request.
// Rejections use 404 so that protected routes are indistinguishable from
// missing ones.
const notAuthorizedMessage = "Not Authorized"
