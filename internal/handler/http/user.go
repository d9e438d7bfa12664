package http

import (
	"net/http"

	"github.com/MKhiriev/yoga-studio/internal/logger"
	"github.com/MKhiriev/yoga-studio/internal/mapper"
	"github.com/MKhiriev/yoga-studio/internal/utils"
)

func (h *Handler) findUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "*Handler.findUser")
		return
	}

	user, err := h.services.UserService.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "*Handler.findUser")
		return
	}

	utils.WriteJSON(w, mapper.UserToDTO(user), http.StatusOK)
}

// deleteUser removes the caller's own account. Deleting any other account
// is answered with 401.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "*Handler.deleteUser")
		return
	}

	principal, err := principalFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.deleteUser")
		return
	}

	if err = h.services.UserService.Delete(r.Context(), principal, id); err != nil {
		writeError(w, r, err, "*Handler.deleteUser")
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", id).Msg("user deleted")
	w.WriteHeader(http.StatusOK)
}
