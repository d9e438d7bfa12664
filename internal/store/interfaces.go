// Package store implements persistence of users, teachers and sessions on
// top of database/sql. PostgreSQL (pgx) is the production backend; SQLite is
// supported for local development and integration tests.
package store

import (
	"context"

	"github.com/MKhiriev/yoga-studio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists studio members and administrators.
type UserRepository interface {
	// Create inserts the user and returns it with ID and timestamps set.
	// Returns ErrEmailAlreadyExists if the email is taken.
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user models.User) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

// TeacherRepository gives read access to the studio teachers.
type TeacherRepository interface {
	FindAll(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, id int64) (models.Teacher, error)
}

// SessionRepository persists sessions together with their ordered
// participant list.
type SessionRepository interface {
	Create(ctx context.Context, session models.Session) (models.Session, error)
	FindAll(ctx context.Context) ([]models.Session, error)
	FindByID(ctx context.Context, id int64) (models.Session, error)
	// Update replaces every field of the stored session, participants
	// included. Returns ErrSessionNotFound if session.ID does not exist.
	Update(ctx context.Context, session models.Session) (models.Session, error)
	Delete(ctx context.Context, id int64) error
	// DeleteParticipationsOfUser removes the user from every session.
	DeleteParticipationsOfUser(ctx context.Context, userID int64) error
}

// ErrorClassificator maps a driver-specific error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
