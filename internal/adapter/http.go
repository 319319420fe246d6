package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-recovery-companion/models"
)

const (
	loginPath       = "/auth/login"
	homePath        = "/patients/home/"
	taskStatusPath  = "/patients/task-status/%d/"
	medicationsPath = "/patients/medications/"
	dietPlanPath    = "/patients/diet-plan/"
	activitiesPath  = "/patients/activities/"
	profilePath     = "/patients/me/"
	aiChatPath      = "/patients/ai-chat/"
)

// ErrMalformedLoginResponse is returned when the login endpoint answers 2xx
// without both tokens.
var ErrMalformedLoginResponse = errors.New("malformed login response")

type httpServerAdapter struct {
	*Client
}

// NewHTTPServerAdapter returns the HTTP/REST implementation of
// [ServerAdapter] over client.
func NewHTTPServerAdapter(client *Client) ServerAdapter {
	return &httpServerAdapter{Client: client}
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /auth/login without the refresh-and-retry behaviour and stores the
// issued token pair.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	credentials.Username = strings.TrimSpace(credentials.Username)

	var auth models.AuthResponse
	if err := h.call(ctx, http.MethodPost, loginPath, credentials, &auth, WithoutRefresh()); err != nil {
		return models.AuthResponse{}, err
	}
	if auth.Access == "" || auth.Refresh == "" {
		return models.AuthResponse{}, ErrMalformedLoginResponse
	}

	if err := h.SetSession(ctx, auth.Session()); err != nil {
		return models.AuthResponse{}, fmt.Errorf("store session: %w", err)
	}

	h.logger.Info().
		Str("func", "httpServerAdapter.Login").
		Int64("user_id", auth.User.ID).
		Str("role", string(auth.User.Role)).
		Msg("signed in")
	return auth, nil
}

// Logout implements [ServerAdapter].
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	return h.SetSession(ctx, models.Session{})
}

// GetHome implements [ServerAdapter]. GET /patients/home/.
func (h *httpServerAdapter) GetHome(ctx context.Context) (models.Home, error) {
	var home models.Home
	if err := h.call(ctx, http.MethodGet, homePath, nil, &home); err != nil {
		return models.Home{}, err
	}
	return home, nil
}

// SetTaskStatus implements [ServerAdapter].
// POST /patients/task-status/{id}/ with body {"completed": ...}.
func (h *httpServerAdapter) SetTaskStatus(ctx context.Context, taskID int64, completed bool) (models.Task, error) {
	var task models.Task
	path := fmt.Sprintf(taskStatusPath, taskID)
	if err := h.call(ctx, http.MethodPost, path, models.TaskStatusRequest{Completed: completed}, &task); err != nil {
		return models.Task{}, err
	}

	// some deployments answer with an empty body
	if task.ID == 0 {
		task = models.Task{ID: taskID, Completed: completed}
	}
	return task, nil
}

// GetMedications implements [ServerAdapter]. GET /patients/medications/.
func (h *httpServerAdapter) GetMedications(ctx context.Context) ([]models.Medication, error) {
	var medications []models.Medication
	if err := h.call(ctx, http.MethodGet, medicationsPath, nil, &medications); err != nil {
		return nil, err
	}
	return medications, nil
}

// GetDietPlan implements [ServerAdapter]. GET /patients/diet-plan/.
func (h *httpServerAdapter) GetDietPlan(ctx context.Context) (models.DietPlan, error) {
	var plan models.DietPlan
	if err := h.call(ctx, http.MethodGet, dietPlanPath, nil, &plan); err != nil {
		return models.DietPlan{}, err
	}
	return plan, nil
}

// GetActivities implements [ServerAdapter]. GET /patients/activities/.
func (h *httpServerAdapter) GetActivities(ctx context.Context) (models.Activities, error) {
	var activities models.Activities
	if err := h.call(ctx, http.MethodGet, activitiesPath, nil, &activities); err != nil {
		return models.Activities{}, err
	}
	return activities, nil
}

// GetProfile implements [ServerAdapter]. GET /patients/me/.
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile
	if err := h.call(ctx, http.MethodGet, profilePath, nil, &profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// AskAI implements [ServerAdapter]. POST /patients/ai-chat/.
func (h *httpServerAdapter) AskAI(ctx context.Context, question string) (models.ChatAnswer, error) {
	var answer models.ChatAnswer
	if err := h.call(ctx, http.MethodPost, aiChatPath, models.ChatRequest{Question: question}, &answer); err != nil {
		return models.ChatAnswer{}, err
	}
	return answer, nil
}

// call runs a request and decodes a non-empty JSON body into out.
func (h *httpServerAdapter) call(ctx context.Context, method, path string, body, out any, opts ...CallOption) error {
	resp, err := h.Request(ctx, method, path, body, opts...)
	if err != nil {
		return err
	}

	if out == nil || len(resp.Body) == 0 || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err = resp.Decode(out); err != nil {
		return fmt.Errorf("%s %s (status %d): %w", method, path, resp.StatusCode, err)
	}

	return nil
}
