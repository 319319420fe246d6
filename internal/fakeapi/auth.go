package fakeapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-recovery-companion/internal/logger"
	"github.com/MKhiriev/go-recovery-companion/internal/utils"
	"github.com/MKhiriev/go-recovery-companion/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, MsgInvalidJSON)
		return
	}
	if credentials.Username == "" || credentials.Password == "" {
		utils.WriteError(w, http.StatusBadRequest, MsgCredentialsRequired)
		return
	}

	auth, err := h.state.authenticate(credentials.Username, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			log.Err(err).Str("username", credentials.Username).Msg("login rejected")
			utils.WriteError(w, http.StatusUnauthorized, MsgInvalidCredentials)
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
		return
	}

	log.Info().Int64("user_id", auth.User.ID).Msg("user signed in")
	_, _ = utils.WriteJSON(w, auth, http.StatusOK)
}

// refresh rotates the token pair. The refresh token is read from the body;
// when the body carries none the bearer token of the request is used.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, MsgInvalidJSON)
		return
	}
	if body.RefreshToken == "" {
		body.RefreshToken, _ = utils.ParseBearerToken(r.Header.Get("Authorization"))
	}

	result, err := h.state.rotate(body.RefreshToken)
	if err != nil {
		var injected *Failure
		switch {
		case errors.As(err, &injected):
			utils.WriteError(w, injected.Status, injected.Detail, injected.Errors...)
		case errors.Is(err, ErrInvalidRefreshToken):
			log.Err(err).Msg("refresh rejected")
			utils.WriteError(w, http.StatusUnauthorized, MsgRefreshTokenInvalid, CodeTokenNotValid)
		default:
			log.Err(err).Msg("unexpected error occurred during refresh")
			utils.WriteError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
		return
	}

	log.Info().Msg("token pair rotated")
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}
