package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/yoga-studio/internal/logger"
	"github.com/MKhiriev/yoga-studio/internal/service"
	"github.com/MKhiriev/yoga-studio/internal/utils"
	"github.com/MKhiriev/yoga-studio/models"
)

const (
	msgUserRegistered = "User registered successfully!"
	msgEmailTaken     = "Error: Email is already taken!"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignupRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, err, "*Handler.register")
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		writeError(w, r, err, "*Handler.register")
		return
	}

	user, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			log.Debug().Str("email", request.Email).Msg("email is already taken")
			utils.WriteJSON(w, models.MessageResponse{Message: msgEmailTaken}, http.StatusBadRequest)
			return
		}
		writeError(w, r, err, "*Handler.register")
		return
	}

	log.Info().Int64("id", user.ID).Msg("user registered")
	utils.WriteJSON(w, models.MessageResponse{Message: msgUserRegistered}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	principal, err := h.services.AuthService.Authenticate(ctx, request.Email, request.Password)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, principal)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	log.Debug().Int64("id", principal.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.JWTResponse{
		Token:     token.SignedString,
		Type:      models.TokenTypeBearer,
		ID:        principal.ID,
		Username:  principal.Username,
		FirstName: principal.FirstName,
		LastName:  principal.LastName,
		Admin:     principal.Admin,
	}, http.StatusOK)
}
