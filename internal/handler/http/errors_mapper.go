package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/yoga-studio/internal/logger"
	"github.com/MKhiriev/yoga-studio/internal/service"
	"github.com/MKhiriev/yoga-studio/internal/store"
	"github.com/MKhiriev/yoga-studio/internal/utils"
	"github.com/MKhiriev/yoga-studio/internal/validators"
	"github.com/MKhiriev/yoga-studio/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidPathParam:            http.StatusBadRequest,
	ErrInvalidJSON:                 http.StatusBadRequest,
	utils.ErrEmptyBody:             http.StatusBadRequest,
	validators.ErrValidationFailed: http.StatusBadRequest,

	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	service.ErrEmailTaken:           http.StatusBadRequest,
	service.ErrUnknownTeacher:       http.StatusBadRequest,
	service.ErrAlreadyParticipating: http.StatusBadRequest,
	service.ErrNotParticipating:     http.StatusBadRequest,

	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrTokenInvalid:       http.StatusUnauthorized,
	service.ErrNotOwner:           http.StatusUnauthorized,
	ErrUnauthorized:               http.StatusUnauthorized,

	service.ErrUserNotFound:    http.StatusNotFound,
	service.ErrTeacherNotFound: http.StatusNotFound,
	service.ErrSessionNotFound: http.StatusNotFound,
	ErrRouteNotFound:           http.StatusNotFound,

	ErrMethodNotAllowed: http.StatusMethodNotAllowed,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrTeacherNotFound:    http.StatusNotFound,
	store.ErrSessionNotFound:    http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers the request with an [models.ErrorResponse] whose status
// is derived from err. Internal failures are logged with their details and
// reported to the client with a generic message only.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := err.Error()
	switch {
	case status == http.StatusInternalServerError:
		log.Err(err).Str("func", funcName).Msg("unexpected error occurred")
		message = "internal server error"
	case errors.Is(err, ErrInvalidJSON):
		// decoder details name Go types; they stay in the log
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Send()
		message = ErrInvalidJSON.Error()
	default:
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Send()
	}

	utils.WriteJSON(w, models.ErrorResponse{
		Path:    r.URL.Path,
		Error:   http.StatusText(status),
		Message: message,
		Status:  status,
	}, status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound, "notFound")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrMethodNotAllowed, "methodNotAllowed")
}
