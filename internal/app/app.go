package app

import (
	"github.com/research-collab/collab-cli/internal/api"
	"github.com/research-collab/collab-cli/internal/services/account"
	"github.com/research-collab/collab-cli/internal/services/profile"
	"github.com/research-collab/collab-cli/internal/services/project"
	"github.com/research-collab/collab-cli/internal/session"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Session store (the only shared mutable state in the client)
	Session *session.Store

	// HTTP facade shared by every service
	api *api.Client

	// Service layer
	AccountService account.Service
	ProjectService project.Service
	ProfileService profile.Service
}

// New creates a new App with all services initialized. The session store
// is injected into the API client so token attachment stays in one place.
func New(serverURL string, store *session.Store) *App {
	client := api.NewClient(serverURL, store)
	return &App{
		Session:        store,
		api:            client,
		AccountService: account.NewService(client),
		ProjectService: project.NewService(client),
		ProfileService: profile.NewService(client),
	}
}

// API returns the underlying HTTP facade.
func (a *App) API() *api.Client {
	return a.api
}

// Close performs cleanup of application resources.
// Currently a no-op, but provided for future resource management needs.
func (a *App) Close() error {
	return nil
}
