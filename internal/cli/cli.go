package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/research-collab/collab-cli/internal/app"
	"github.com/research-collab/collab-cli/internal/config"
	"github.com/research-collab/collab-cli/internal/session"
)

// ErrNotLoggedIn is returned by RequireLogin when no session is present.
var ErrNotLoggedIn = errors.New("not logged in (run 'collab auth login')")

// CLI represents the CLI application context
type CLI struct {
	App    *app.App
	Config *config.Config
	ctx    context.Context
}

// NewCLI initializes the CLI with config, session store, and services
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := session.NewStore()
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	application := app.New(cfg.ServerURL, store)

	return &CLI{
		App:    application,
		Config: cfg,
		ctx:    ctx,
	}, nil
}

// RequireLogin returns ErrNotLoggedIn when no token is stored. Presence
// of a token is all that is checked; an expired one fails server side.
func (c *CLI) RequireLogin() error {
	if c.App.Session.Token() == "" {
		return ErrNotLoggedIn
	}
	return nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}
