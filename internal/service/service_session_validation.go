package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/yoga-studio/models"
)

// SessionValidationService rejects identifiers that can never exist before
// they reach the wrapped SessionService.
type SessionValidationService struct {
	inner SessionService
}

func NewSessionValidationService() SessionServiceWrapper {
	return &SessionValidationService{}
}

func (v *SessionValidationService) Create(ctx context.Context, session models.Session) (models.Session, error) {
	if err := validateReferences(session); err != nil {
		return models.Session{}, err
	}

	return v.inner.Create(ctx, session)
}

func (v *SessionValidationService) FindAll(ctx context.Context) ([]models.Session, error) {
	return v.inner.FindAll(ctx)
}

func (v *SessionValidationService) FindByID(ctx context.Context, id int64) (models.Session, error) {
	if err := validateID("session", id); err != nil {
		return models.Session{}, err
	}

	return v.inner.FindByID(ctx, id)
}

func (v *SessionValidationService) Update(ctx context.Context, id int64, session models.Session) (models.Session, error) {
	if err := validateID("session", id); err != nil {
		return models.Session{}, err
	}
	if err := validateReferences(session); err != nil {
		return models.Session{}, err
	}

	return v.inner.Update(ctx, id, session)
}

func (v *SessionValidationService) Delete(ctx context.Context, id int64) error {
	if err := validateID("session", id); err != nil {
		return err
	}

	return v.inner.Delete(ctx, id)
}

func (v *SessionValidationService) Participate(ctx context.Context, sessionID, userID int64) error {
	if err := validateID("session", sessionID); err != nil {
		return err
	}
	if err := validateID("user", userID); err != nil {
		return err
	}

	return v.inner.Participate(ctx, sessionID, userID)
}

func (v *SessionValidationService) CancelParticipation(ctx context.Context, sessionID, userID int64) error {
	if err := validateID("session", sessionID); err != nil {
		return err
	}
	if err := validateID("user", userID); err != nil {
		return err
	}

	return v.inner.CancelParticipation(ctx, sessionID, userID)
}

func (v *SessionValidationService) Wrap(wrapped SessionService) SessionService {
	v.inner = wrapped
	return v
}

func validateID(name string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s id must be positive, got %d", ErrInvalidDataProvided, name, id)
	}
	return nil
}

func validateReferences(session models.Session) error {
	if session.Teacher != nil {
		if err := validateID("teacher", session.Teacher.ID); err != nil {
			return err
		}
	}
	return nil
}
