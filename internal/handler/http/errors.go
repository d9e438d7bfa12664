// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidPathParam is returned when a numeric path parameter such as
	// {id} or {userId} cannot be parsed as a positive integer.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrInvalidJSON is returned when the request body is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrUnauthorized is written by requireAuth for anonymous requests on
	// protected routes.
	ErrUnauthorized = errors.New("full authentication is required to access this resource")

	// ErrRouteNotFound and ErrMethodNotAllowed back the router fallbacks.
	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)
