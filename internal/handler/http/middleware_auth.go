package http

import (
	"net/http"

	"github.com/MKhiriev/yoga-studio/internal/logger"
	"github.com/MKhiriev/yoga-studio/internal/utils"
	"github.com/MKhiriev/yoga-studio/models"
)

// authenticate is the per-request authentication filter.
//
// It reads a "Bearer <token>" value from the "Authorization" header, verifies
// the token via [service.AuthService.VerifyToken], loads the principal for
// the token subject and stores it in the request context under
// [utils.PrincipalCtxKey].
//
// The filter never rejects a request. A missing header, a foreign scheme, an
// invalid or expired token and a failed principal lookup all leave the
// request anonymous; routes that need an identity are guarded by
// [requireAuth]. Failures are logged server side only.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		username, err := h.services.AuthService.VerifyToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.authenticate").Msg("bearer token rejected")
			next.ServeHTTP(w, r)
			return
		}

		principal, err := h.services.AuthService.LoadPrincipal(ctx, username)
		if err != nil {
			log.Err(err).Str("func", "*Handler.authenticate").Str("username", username).
				Msg("cannot set user authentication")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, principal)))
	})
}

// requireAuth rejects anonymous requests with a uniform 401 response.
func requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetPrincipalFromContext(r.Context()); !ok {
			setRouteLabel(r, unauthenticatedRoute)
			writeError(w, r, ErrUnauthorized, "requireAuth")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// principalFromRequest returns the principal stored by authenticate. Handlers
// behind requireAuth can rely on it being present.
func principalFromRequest(r *http.Request) (models.Principal, error) {
	p, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		return p, ErrUnauthorized
	}
	return p, nil
}
