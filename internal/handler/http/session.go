package http

import (
	"net/http"

	"github.com/MKhiriev/yoga-studio/internal/logger"
	"github.com/MKhiriev/yoga-studio/internal/mapper"
	"github.com/MKhiriev/yoga-studio/internal/utils"
	"github.com/MKhiriev/yoga-studio/models"
)

func (h *Handler) findAllSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.services.SessionService.FindAll(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.findAllSessions")
		return
	}

	utils.WriteJSON(w, mapper.SessionsToDTO(sessions), http.StatusOK)
}

func (h *Handler) findSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "*Handler.findSession")
		return
	}

	session, err := h.services.SessionService.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "*Handler.findSession")
		return
	}

	utils.WriteJSON(w, mapper.SessionToDTO(session), http.StatusOK)
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dto, err := h.readSessionDTO(r)
	if err != nil {
		writeError(w, r, err, "*Handler.createSession")
		return
	}

	created, err := h.services.SessionService.Create(ctx, mapper.SessionToEntity(dto))
	if err != nil {
		writeError(w, r, err, "*Handler.createSession")
		return
	}

	logger.FromRequest(r).Info().Int64("session_id", created.ID).Msg("session created")
	utils.WriteJSON(w, mapper.SessionToDTO(created), http.StatusOK)
}

func (h *Handler) updateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "*Handler.updateSession")
		return
	}

	dto, err := h.readSessionDTO(r)
	if err != nil {
		writeError(w, r, err, "*Handler.updateSession")
		return
	}

	updated, err := h.services.SessionService.Update(ctx, id, mapper.SessionToEntity(dto))
	if err != nil {
		writeError(w, r, err, "*Handler.updateSession")
		return
	}

	utils.WriteJSON(w, mapper.SessionToDTO(updated), http.StatusOK)
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "*Handler.deleteSession")
		return
	}

	if err = h.services.SessionService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, "*Handler.deleteSession")
		return
	}

	logger.FromRequest(r).Info().Int64("session_id", id).Msg("session deleted")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) participate(w http.ResponseWriter, r *http.Request) {
	sessionID, userID, err := participationIDs(r)
	if err != nil {
		writeError(w, r, err, "*Handler.participate")
		return
	}

	if err = h.services.SessionService.Participate(r.Context(), sessionID, userID); err != nil {
		writeError(w, r, err, "*Handler.participate")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) cancelParticipation(w http.ResponseWriter, r *http.Request) {
	sessionID, userID, err := participationIDs(r)
	if err != nil {
		writeError(w, r, err, "*Handler.cancelParticipation")
		return
	}

	if err = h.services.SessionService.CancelParticipation(r.Context(), sessionID, userID); err != nil {
		writeError(w, r, err, "*Handler.cancelParticipation")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) readSessionDTO(r *http.Request) (models.SessionDTO, error) {
	var dto models.SessionDTO
	if err := decodeBody(r, &dto); err != nil {
		return dto, err
	}
	if err := h.validator.Validate(r.Context(), dto); err != nil {
		return dto, err
	}
	return dto, nil
}

func participationIDs(r *http.Request) (sessionID, userID int64, err error) {
	if sessionID, err = pathID(r, "id"); err != nil {
		return 0, 0, err
	}
	if userID, err = pathID(r, "userId"); err != nil {
		return 0, 0, err
	}
	return sessionID, userID, nil
}
