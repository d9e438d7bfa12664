// Package service holds the domain logic of the studio: authentication and
// token handling, user self-service, the teacher catalogue, session
// management and session participation.
//
// Services work on entities from the models package. Foreign keys arriving
// as reference stubs (a Teacher or User with only ID set) are resolved here
// before anything is persisted.
package service

import (
	"context"

	"github.com/MKhiriev/yoga-studio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService verifies credentials and issues and verifies bearer tokens.
type AuthService interface {
	// Register creates a non-admin user. Returns ErrEmailTaken if the email
	// is already in use.
	Register(ctx context.Context, request models.SignupRequest) (models.User, error)

	// Authenticate checks email and password against the stored hash.
	// An unknown email and a wrong password both yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (models.Principal, error)

	// IssueToken signs a token whose subject is the principal's username.
	IssueToken(ctx context.Context, principal models.Principal) (models.Token, error)

	// VerifyToken returns the username carried by a valid token. Every
	// failure is reported as ErrTokenInvalid.
	VerifyToken(ctx context.Context, token string) (string, error)

	// LoadPrincipal builds the principal of the user with the given username.
	LoadPrincipal(ctx context.Context, username string) (models.Principal, error)

	// EnsureAdmin makes sure an admin account with the given email exists.
	EnsureAdmin(ctx context.Context, email, password string) error
}

type UserService interface {
	FindByID(ctx context.Context, id int64) (models.User, error)
	// Delete removes the account with the given id. Only the owner of the
	// account may delete it; anyone else gets ErrNotOwner.
	Delete(ctx context.Context, principal models.Principal, id int64) error
}

type TeacherService interface {
	FindAll(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, id int64) (models.Teacher, error)
}

// SessionService manages sessions and their participant lists.
type SessionService interface {
	Create(ctx context.Context, session models.Session) (models.Session, error)
	FindAll(ctx context.Context) ([]models.Session, error)
	FindByID(ctx context.Context, id int64) (models.Session, error)
	Update(ctx context.Context, id int64, session models.Session) (models.Session, error)
	Delete(ctx context.Context, id int64) error

	// Participate appends the user to the session's participant list.
	// Fails with ErrSessionNotFound, ErrUserNotFound or
	// ErrAlreadyParticipating, checked in that order.
	Participate(ctx context.Context, sessionID, userID int64) error

	// CancelParticipation removes the user from the session's participant
	// list. Fails with ErrSessionNotFound or ErrNotParticipating.
	CancelParticipation(ctx context.Context, sessionID, userID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
