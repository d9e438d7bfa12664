package service

import (
	"errors"

	"github.com/MKhiriev/yoga-studio/internal/store"
)

// mapStoreError translates a repository error into a service business error.
// Errors without a business meaning are returned unchanged.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, store.ErrTeacherNotFound):
		return ErrTeacherNotFound
	case errors.Is(err, store.ErrSessionNotFound):
		return ErrSessionNotFound
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrEmailTaken
	}

	return err
}
