package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrEmailTaken          = errors.New("email is already taken")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrTokenInvalid        = errors.New("token is expired or invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrUserNotFound    = errors.New("user not found")
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrSessionNotFound = errors.New("session not found")

	// ErrNotOwner is returned when a principal acts on an account it does
	// not own.
	ErrNotOwner = errors.New("principal does not own the account")

	// ErrUnknownTeacher is returned when a session references a teacher
	// that does not exist. Unlike ErrTeacherNotFound it is a client input
	// error.
	ErrUnknownTeacher = errors.New("session references an unknown teacher")

	ErrAlreadyParticipating = errors.New("user already participates in the session")
	ErrNotParticipating     = errors.New("user does not participate in the session")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
