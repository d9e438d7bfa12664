package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/yoga-studio/internal/logger"
	"github.com/MKhiriev/yoga-studio/internal/store"
	"github.com/MKhiriev/yoga-studio/models"
)

// sessionService implements SessionService.
//
// Participation changes are read-modify-write against the stored session
// with no version check: two concurrent changes of the same session may lose
// one of them (last write wins).
type sessionService struct {
	sessionRepository store.SessionRepository
	teacherRepository store.TeacherRepository
	userRepository    store.UserRepository

	logger *logger.Logger
}

func NewSessionService(
	sessionRepository store.SessionRepository,
	teacherRepository store.TeacherRepository,
	userRepository store.UserRepository,
	logger *logger.Logger,
) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		teacherRepository: teacherRepository,
		userRepository:    userRepository,
		logger:            logger,
	}
}

func (s *sessionService) Create(ctx context.Context, session models.Session) (models.Session, error) {
	resolved, err := s.resolveReferences(ctx, session)
	if err != nil {
		return models.Session{}, err
	}

	created, err := s.sessionRepository.Create(ctx, resolved)
	if err != nil {
		return models.Session{}, mapSessionWriteError(err)
	}

	return created, nil
}

func (s *sessionService) FindAll(ctx context.Context) ([]models.Session, error) {
	return s.sessionRepository.FindAll(ctx)
}

func (s *sessionService) FindByID(ctx context.Context, id int64) (models.Session, error) {
	session, err := s.sessionRepository.FindByID(ctx, id)
	if err != nil {
		return models.Session{}, mapStoreError(err)
	}

	return session, nil
}

// Update replaces the stored session id with session. The id in the path
// wins over any id carried by session.
func (s *sessionService) Update(ctx context.Context, id int64, session models.Session) (models.Session, error) {
	session.ID = id

	resolved, err := s.resolveReferences(ctx, session)
	if err != nil {
		return models.Session{}, err
	}

	updated, err := s.sessionRepository.Update(ctx, resolved)
	if err != nil {
		return models.Session{}, mapSessionWriteError(err)
	}

	return updated, nil
}

func (s *sessionService) Delete(ctx context.Context, id int64) error {
	if err := s.sessionRepository.Delete(ctx, id); err != nil {
		return mapStoreError(err)
	}

	logger.FromContext(ctx).Info().Str("func", "*sessionService.Delete").Int64("session_id", id).Msg("session deleted")
	return nil
}

func (s *sessionService) Participate(ctx context.Context, sessionID, userID int64) error {
	log := logger.FromContext(ctx)

	session, err := s.sessionRepository.FindByID(ctx, sessionID)
	if err != nil {
		return mapStoreError(err)
	}

	user, err := s.userRepository.FindByID(ctx, userID)
	if err != nil {
		return mapStoreError(err)
	}

	if session.HasParticipant(userID) {
		return ErrAlreadyParticipating
	}

	session.Users = append(session.Users, user)

	if _, err := s.sessionRepository.Update(ctx, session); err != nil {
		return mapSessionWriteError(err)
	}

	log.Info().Str("func", "*sessionService.Participate").
		Int64("session_id", sessionID).
		Int64("user_id", userID).
		Msg("user joined session")
	return nil
}

func (s *sessionService) CancelParticipation(ctx context.Context, sessionID, userID int64) error {
	log := logger.FromContext(ctx)

	session, err := s.sessionRepository.FindByID(ctx, sessionID)
	if err != nil {
		return mapStoreError(err)
	}

	if !session.HasParticipant(userID) {
		return ErrNotParticipating
	}

	remaining := make([]models.User, 0, len(session.Users))
	for _, u := range session.Users {
		if u.ID != userID {
			remaining = append(remaining, u)
		}
	}
	session.Users = remaining

	if _, err := s.sessionRepository.Update(ctx, session); err != nil {
		return mapSessionWriteError(err)
	}

	log.Info().Str("func", "*sessionService.CancelParticipation").
		Int64("session_id", sessionID).
		Int64("user_id", userID).
		Msg("user left session")
	return nil
}

// resolveReferences replaces the teacher and participant stubs of session
// with the stored records.
//
// An unknown teacher fails with ErrUnknownTeacher. Unknown participant ids
// are dropped and repeated ones collapsed, keeping the first occurrence.
func (s *sessionService) resolveReferences(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	if session.Teacher != nil {
		teacher, err := s.teacherRepository.FindByID(ctx, session.Teacher.ID)
		if errors.Is(err, store.ErrTeacherNotFound) {
			return models.Session{}, fmt.Errorf("%w: id %d", ErrUnknownTeacher, session.Teacher.ID)
		}
		if err != nil {
			return models.Session{}, err
		}
		session.Teacher = &teacher
	}

	users := make([]models.User, 0, len(session.Users))
	seen := make(map[int64]struct{}, len(session.Users))
	for _, stub := range session.Users {
		if _, ok := seen[stub.ID]; ok {
			continue
		}
		seen[stub.ID] = struct{}{}

		user, err := s.userRepository.FindByID(ctx, stub.ID)
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("func", "*sessionService.resolveReferences").Int64("user_id", stub.ID).Msg("dropping unknown participant")
			continue
		}
		if err != nil {
			return models.Session{}, err
		}
		users = append(users, user)
	}
	session.Users = users

	return session, nil
}

// mapSessionWriteError maps a failed session write. A teacher removed
// between resolution and the write is still a client input error.
func mapSessionWriteError(err error) error {
	if errors.Is(err, store.ErrTeacherNotFound) {
		return ErrUnknownTeacher
	}
	return mapStoreError(err)
}
