package adapter

import "errors"

// Errors returned by [ServerAdapter] for non-2xx responses. The server
// message is appended to the wrapped error.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected response status")
)
