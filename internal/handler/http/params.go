package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/yoga-studio/internal/utils"
	"github.com/go-chi/chi/v5"
)

// pathID reads the named URL parameter as a positive int64.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPathParam, name, raw)
	}
	return id, nil
}

// decodeBody reads the JSON request body into v. Malformed payloads are
// reported as [ErrInvalidJSON].
func decodeBody(r *http.Request, v any) error {
	if err := utils.ReadJSON(r, v); err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
