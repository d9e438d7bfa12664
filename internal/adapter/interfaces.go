// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the yoga-studio REST API.
//
// [ServerAdapter] hides the HTTP details: request serialisation, the bearer
// token header and the mapping of error statuses to the sentinel values in
// errors.go, so that callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/yoga-studio/models"
)

// ServerAdapter is a client of the yoga-studio API. All methods except
// Register, Login and Version need a token, set by Login or SetToken.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Register creates an account and returns the server confirmation.
	Register(ctx context.Context, request models.SignupRequest) (models.MessageResponse, error)

	// Login authenticates the user and stores the issued token.
	Login(ctx context.Context, request models.LoginRequest) (models.JWTResponse, error)

	Sessions(ctx context.Context) ([]models.SessionDTO, error)
	Session(ctx context.Context, id int64) (models.SessionDTO, error)
	CreateSession(ctx context.Context, session models.SessionDTO) (models.SessionDTO, error)
	UpdateSession(ctx context.Context, id int64, session models.SessionDTO) (models.SessionDTO, error)
	DeleteSession(ctx context.Context, id int64) error

	// Participate adds the user to the session participants.
	Participate(ctx context.Context, sessionID, userID int64) error

	// CancelParticipation removes the user from the session participants.
	CancelParticipation(ctx context.Context, sessionID, userID int64) error

	Teachers(ctx context.Context) ([]models.TeacherDTO, error)
	Teacher(ctx context.Context, id int64) (models.TeacherDTO, error)

	User(ctx context.Context, id int64) (models.UserDTO, error)

	// DeleteUser deletes the account of the token owner. Deleting any other
	// account fails with ErrUnauthorized.
	DeleteUser(ctx context.Context, id int64) error

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
