package fakeapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-recovery-companion/internal/logger"
	"github.com/MKhiriev/go-recovery-companion/internal/utils"
	"github.com/MKhiriev/go-recovery-companion/models"
	"github.com/go-chi/chi/v5"
)

// readRecord copies what read takes from the caller's patient record and
// writes it as the response.
func (h *Handler) readRecord(w http.ResponseWriter, r *http.Request, read func(rec *patientRecord) any) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var data any
	err := h.state.record(userID, func(rec *patientRecord) error {
		data = read(rec)
		return nil
	})
	if err != nil {
		h.writeRecordError(w, r, err)
		return
	}

	h.respond(w, data)
}

func (h *Handler) writeRecordError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, ErrNoPatientRecord):
		log.Err(err).Msg("no patient record")
		utils.WriteError(w, http.StatusForbidden, MsgPermissionDenied)
	case errors.Is(err, ErrTaskNotFound):
		utils.WriteError(w, http.StatusNotFound, err.Error())
	default:
		log.Err(err).Msg("unexpected error")
		utils.WriteError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.readRecord(w, r, func(rec *patientRecord) any {
		home := rec.home
		home.Tasks = slices.Clone(rec.home.Tasks)
		return home
	})
}

func (h *Handler) medications(w http.ResponseWriter, r *http.Request) {
	h.readRecord(w, r, func(rec *patientRecord) any { return slices.Clone(rec.medications) })
}

func (h *Handler) dietPlan(w http.ResponseWriter, r *http.Request) {
	h.readRecord(w, r, func(rec *patientRecord) any { return rec.diet })
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	h.readRecord(w, r, func(rec *patientRecord) any { return rec.activities })
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	h.readRecord(w, r, func(rec *patientRecord) any { return rec.profile })
}

func (h *Handler) taskStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(r.Context())

	taskID, err := strconv.ParseInt(chi.URLParam(r, "taskID"), 10, 64)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, MsgInvalidTaskID)
		return
	}

	var body models.TaskStatusRequest
	if err = json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, MsgInvalidJSON)
		return
	}

	var task models.Task
	err = h.state.record(userID, func(rec *patientRecord) error {
		i := slices.IndexFunc(rec.home.Tasks, func(t models.Task) bool { return t.ID == taskID })
		if i < 0 {
			return fmt.Errorf("%w: %d", ErrTaskNotFound, taskID)
		}
		rec.home.Tasks[i].Completed = body.Completed
		task = rec.home.Tasks[i]
		return nil
	})
	if err != nil {
		h.writeRecordError(w, r, err)
		return
	}

	h.respond(w, task)
}

func (h *Handler) aiChat(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, MsgInvalidJSON)
		return
	}
	if strings.TrimSpace(body.Question) == "" {
		utils.WriteError(w, http.StatusBadRequest, MsgQuestionRequired, "question: This field may not be blank.")
		return
	}

	h.respond(w, models.ChatAnswer{Answer: answerFor(body.Question)})
}

// answerFor is the canned recovery assistant.
func answerFor(question string) string {
	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "shower"):
		return "You can shower 48 hours after surgery. Keep the dressing dry and pat the area gently."
	case strings.Contains(q, "pain"):
		return "Mild pain is expected. Take Ibuprofen as scheduled and contact your nurse if it gets worse."
	case strings.Contains(q, "walk"), strings.Contains(q, "exercise"):
		return "Short walks with support are encouraged. Avoid running and lifting until your surgeon clears you."
	case strings.Contains(q, "eat"), strings.Contains(q, "food"), strings.Contains(q, "diet"):
		return "Follow your diet plan: high-protein soft foods, plenty of water, no alcohol."
	default:
		return "I am not sure about that. Please ask your care team during the next visit."
	}
}
