// Package profile is the client for the per-user profile endpoints.
package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/research-collab/collab-cli/internal/api"
	"github.com/research-collab/collab-cli/internal/models"
	"github.com/research-collab/collab-cli/internal/validate"
)

// Service defines profile operations for one user id.
type Service interface {
	// Get fetches the profile for the given user.
	Get(ctx context.Context, userID string) (*models.Profile, error)

	// Update saves the editable fields and returns the server's message.
	// Email is read only and never sent.
	Update(ctx context.Context, userID string, p models.Profile) (string, error)
}

// service implements Service over the HTTP facade
type service struct {
	api *api.Client
}

// NewService creates a profile service backed by the given API client.
func NewService(client *api.Client) Service {
	return &service{api: client}
}

func (s *service) Get(ctx context.Context, userID string) (*models.Profile, error) {
	if !validate.Required(userID) {
		return nil, ErrUserIDRequired
	}
	var p models.Profile
	if err := s.api.Get(ctx, fmt.Sprintf("/users/%s/profile", userID), &p); err != nil {
		slog.Error("profile fetch failed", "user_id", userID, "error", err)
		return nil, ErrLoadFailed
	}
	return &p, nil
}

func (s *service) Update(ctx context.Context, userID string, p models.Profile) (string, error) {
	if !validate.Required(userID) {
		return "", ErrUserIDRequired
	}
	if !validate.Required(p.FullName) {
		return "", ErrFullNameRequired
	}

	// Only the editable fields go over the wire.
	body := struct {
		FullName    string `json:"full_name"`
		Affiliation string `json:"affiliation"`
		Bio         string `json:"bio"`
	}{FullName: p.FullName, Affiliation: p.Affiliation, Bio: p.Bio}

	var resp struct {
		Message string `json:"message"`
	}
	if err := s.api.Put(ctx, fmt.Sprintf("/users/%s/profile", userID), body, &resp); err != nil {
		slog.Error("profile update failed", "user_id", userID, "error", err)
		return "", ErrUpdateFailed
	}
	return resp.Message, nil
}
