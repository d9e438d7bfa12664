package service

import (
	"context"

	"github.com/MKhiriev/yoga-studio/internal/logger"
	"github.com/MKhiriev/yoga-studio/internal/store"
	"github.com/MKhiriev/yoga-studio/models"
)

type userService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, sessionRepository store.SessionRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		logger:            logger,
	}
}

func (s *userService) FindByID(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return models.User{}, mapStoreError(err)
	}

	return user, nil
}

// Delete removes the user from every session and then deletes the account.
// The two steps are not atomic; a failure in between leaves an account
// without participations, which is harmless.
func (s *userService) Delete(ctx context.Context, principal models.Principal, id int64) error {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return mapStoreError(err)
	}

	if !principal.Owns(user) {
		log.Warn().Str("func", "*userService.Delete").
			Int64("principal_id", principal.ID).
			Int64("user_id", id).
			Msg("attempt to delete another user's account")
		return ErrNotOwner
	}

	if err := s.sessionRepository.DeleteParticipationsOfUser(ctx, id); err != nil {
		return mapStoreError(err)
	}

	if err := s.userRepository.Delete(ctx, id); err != nil {
		return mapStoreError(err)
	}

	log.Info().Str("func", "*userService.Delete").Int64("user_id", id).Msg("account deleted")
	return nil
}
