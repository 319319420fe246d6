package fakeapi

import (
	"net/http"

	"github.com/MKhiriev/go-recovery-companion/internal/logger"
	"github.com/MKhiriev/go-recovery-companion/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the access token from the "Authorization" header, validates it
// against the issued tokens and, on success, stores the user ID in the
// request context under [utils.UserIDCtxKey]. Every rejection is a 401 with a
// JSON error body, which is what makes the client refresh its session.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, http.StatusUnauthorized, MsgNoCredentials)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, http.StatusUnauthorized, err.Error())
			return
		}

		userID, err := h.state.authorize(tokenString)
		if err != nil {
			log.Err(err).Msg("access token rejected")
			utils.WriteError(w, http.StatusUnauthorized, MsgAccessTokenInvalid, CodeTokenNotValid)
			return
		}

		noteUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), userID)))
	})
}

// withInjectedFailure answers with the failure queued by [State.FailNext],
// if any, instead of calling next.
func (h *Handler) withInjectedFailure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if f := h.state.takeFailure(); f != nil {
			logger.FromRequest(r).Warn().Int("status", f.Status).Msg("answering with injected failure")
			utils.WriteError(w, f.Status, f.Detail, f.Errors...)
			return
		}

		next.ServeHTTP(w, r)
	})
}
