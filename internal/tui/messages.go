package tui

import "github.com/MKhiriev/go-recovery-companion/models"

// NavigateTo switches the active page of [RootModel].
type NavigateTo struct {
	Page string
}

// LoginResult is produced by the login page once the sign-in call returns.
type LoginResult struct {
	User models.User
	Err  error
}

type quitRequested struct{}

type homeLoadedMsg struct {
	home models.Home
	err  error
}

type medicationsLoadedMsg struct {
	medications []models.Medication
	err         error
}

type dietLoadedMsg struct {
	diet models.DietPlan
	err  error
}

type activitiesLoadedMsg struct {
	activities models.Activities
	err        error
}

type profileLoadedMsg struct {
	profile models.Profile
	err     error
}

type taskToggledMsg struct {
	task models.Task
	err  error
}

type answerMsg struct {
	question string
	answer   string
	err      error
}

type noticeMsg Notice
