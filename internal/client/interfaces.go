// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-recovery-companion/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// LoginFlow blocks until the user signs in or quits.
	LoginFlow(ctx context.Context) (models.User, error)

	// MainLoop blocks until the user quits or signs out. logout is true
	// when the session has to be cleared.
	MainLoop(ctx context.Context, user models.User) (logout bool, err error)
}

// Workers are the background jobs that run while a user is signed in.
type Workers interface {
	Start(ctx context.Context)
	Stop()
}
