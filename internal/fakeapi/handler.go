package fakeapi

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-recovery-companion/internal/logger"
	"github.com/MKhiriev/go-recovery-companion/internal/utils"
)

type Handler struct {
	state *State

	logger *logger.Logger
}

func NewHandler(state *State, logger *logger.Logger) *Handler {
	logger.Info().Msg("fake api handler created")
	return &Handler{
		state:  state,
		logger: logger,
	}
}

// respond writes data as JSON. Warnings injected through [State.WarnNext]
// are attached to object bodies under "warnings".
func (h *Handler) respond(w http.ResponseWriter, data any) {
	warnings := h.state.takeWarnings()
	if len(warnings) == 0 {
		_, _ = utils.WriteJSON(w, data, http.StatusOK)
		return
	}

	raw, err := json.Marshal(data)
	if err != nil || !bytes.HasPrefix(raw, []byte("{")) {
		_, _ = utils.WriteJSON(w, data, http.StatusOK)
		return
	}

	var body map[string]json.RawMessage
	if err = json.Unmarshal(raw, &body); err != nil {
		_, _ = utils.WriteJSON(w, data, http.StatusOK)
		return
	}
	body["warnings"], _ = json.Marshal(warnings)

	_, _ = utils.WriteJSON(w, body, http.StatusOK)
}
