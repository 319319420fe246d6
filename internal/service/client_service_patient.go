package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-recovery-companion/internal/adapter"
	"github.com/MKhiriev/go-recovery-companion/models"
)

type clientPatientService struct {
	adapter adapter.ServerAdapter
}

// NewClientPatientService creates a ClientPatientService backed by
// serverAdapter.
func NewClientPatientService(serverAdapter adapter.ServerAdapter) ClientPatientService {
	return &clientPatientService{adapter: serverAdapter}
}

func (p *clientPatientService) Home(ctx context.Context) (models.Home, error) {
	home, err := p.adapter.GetHome(ctx)
	if err != nil {
		return models.Home{}, mapAdapterError(err)
	}
	return home, nil
}

func (p *clientPatientService) SetTaskStatus(ctx context.Context, taskID int64, completed bool) (models.Task, error) {
	if taskID <= 0 {
		return models.Task{}, ErrInvalidDataProvided
	}

	task, err := p.adapter.SetTaskStatus(ctx, taskID, completed)
	if err != nil {
		return models.Task{}, mapAdapterError(err)
	}
	return task, nil
}

func (p *clientPatientService) Medications(ctx context.Context) ([]models.Medication, error) {
	medications, err := p.adapter.GetMedications(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return medications, nil
}

func (p *clientPatientService) DietPlan(ctx context.Context) (models.DietPlan, error) {
	plan, err := p.adapter.GetDietPlan(ctx)
	if err != nil {
		return models.DietPlan{}, mapAdapterError(err)
	}
	return plan, nil
}

func (p *clientPatientService) Activities(ctx context.Context) (models.Activities, error) {
	activities, err := p.adapter.GetActivities(ctx)
	if err != nil {
		return models.Activities{}, mapAdapterError(err)
	}
	return activities, nil
}

func (p *clientPatientService) Profile(ctx context.Context) (models.Profile, error) {
	profile, err := p.adapter.GetProfile(ctx)
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}
	return profile, nil
}

func (p *clientPatientService) AskAI(ctx context.Context, question string) (models.ChatAnswer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return models.ChatAnswer{}, ErrEmptyQuestion
	}

	answer, err := p.adapter.AskAI(ctx, question)
	if err != nil {
		return models.ChatAnswer{}, mapAdapterError(err)
	}
	return answer, nil
}
