// Package project is the client for project, collaborator, and invitation
// endpoints.
//
// Error handling is deliberately uneven and matches the platform's web
// client operation for operation: read operations fail open (a transport
// or server failure reads as an empty result, with the cause logged),
// while Update propagates its error. Callers must not assume one policy
// across methods.
package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/research-collab/collab-cli/internal/api"
	"github.com/research-collab/collab-cli/internal/models"
	"github.com/research-collab/collab-cli/internal/validate"
)

// ResponseAction is the caller's answer to an invitation.
type ResponseAction string

const (
	ActionAccept ResponseAction = "accept"
	ActionReject ResponseAction = "reject"
)

// Service defines all project-related operations. Each method is a single
// request/response pair: no caching, no pagination, no retry. After a
// mutating call the caller re-fetches list state; nothing is pushed.
type Service interface {
	// Read operations (fail open: failures read as empty results)
	ListAll(ctx context.Context) []models.Project
	ListMine(ctx context.Context) []models.Project
	GetByID(ctx context.Context, id int) *models.Project
	ListInvitations(ctx context.Context) []models.Invitation

	// Write operations
	Create(ctx context.Context, p models.Project) (string, error)
	Update(ctx context.Context, id int, p models.Project) (*models.Project, error)
	InviteCollaborator(ctx context.Context, projectID int, email string, role models.CollaboratorRole) (string, error)
	Respond(ctx context.Context, projectID, invitationID int, action ResponseAction) (string, error)
}

// service implements Service over the HTTP facade
type service struct {
	api *api.Client
}

// NewService creates a project service backed by the given API client.
func NewService(client *api.Client) Service {
	return &service{api: client}
}

// ListAll retrieves every visible project. On any failure it returns an
// empty list so the caller renders an empty state instead of an error.
func (s *service) ListAll(ctx context.Context) []models.Project {
	return s.fetchProjects(ctx, "/projects")
}

// ListMine retrieves the current user's projects. Fails open like ListAll.
func (s *service) ListMine(ctx context.Context) []models.Project {
	return s.fetchProjects(ctx, "/projects/user")
}

func (s *service) fetchProjects(ctx context.Context, path string) []models.Project {
	var resp struct {
		Projects []models.Project `json:"projects"`
	}
	if err := s.api.Get(ctx, path, &resp); err != nil {
		slog.Error("project list fetch failed", "path", path, "error", err)
		return []models.Project{}
	}
	if resp.Projects == nil {
		return []models.Project{}
	}
	for i := range resp.Projects {
		resp.Projects[i].Normalize()
	}
	return resp.Projects
}

// GetByID retrieves one project, or nil when it does not exist or the
// fetch failed. The two cases are not distinguishable here; the caller
// shows one generic message.
func (s *service) GetByID(ctx context.Context, id int) *models.Project {
	if id <= 0 {
		return nil
	}
	var p models.Project
	if err := s.api.Get(ctx, fmt.Sprintf("/projects/%d", id), &p); err != nil {
		slog.Error("project fetch failed", "id", id, "error", err)
		return nil
	}
	p.Normalize()
	return &p
}

// ListInvitations retrieves the current user's pending invitations.
// An empty list means either "none pending" or "fetch failed"; callers
// must not distinguish the two.
func (s *service) ListInvitations(ctx context.Context) []models.Invitation {
	var resp struct {
		Invitations []models.Invitation `json:"invitations"`
	}
	if err := s.api.Get(ctx, "/projects/invitations", &resp); err != nil {
		slog.Error("invitation fetch failed", "error", err)
		return []models.Invitation{}
	}
	if resp.Invitations == nil {
		return []models.Invitation{}
	}
	return resp.Invitations
}

// Create posts a new project and returns the server's message.
// The skill list is sent exactly as given; order is preserved end to end.
func (s *service) Create(ctx context.Context, p models.Project) (string, error) {
	if p.Title == "" {
		return "", ErrEmptyTitle
	}
	p.Normalize()

	var resp struct {
		Message string `json:"message"`
	}
	if err := s.api.Post(ctx, "/projects", p, &resp); err != nil {
		slog.Error("project create failed", "title", p.Title, "error", err)
		return "", ErrCreateFailed
	}
	return resp.Message, nil
}

// Update replaces a project and returns the server's echo of it.
// Unlike the read methods this propagates the error to the caller.
func (s *service) Update(ctx context.Context, id int, p models.Project) (*models.Project, error) {
	if id <= 0 {
		return nil, ErrInvalidProjectID
	}
	if p.Title == "" {
		return nil, ErrEmptyTitle
	}
	p.Normalize()

	var updated models.Project
	if err := s.api.Put(ctx, fmt.Sprintf("/projects/%d", id), p, &updated); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	updated.Normalize()
	return &updated, nil
}

// InviteCollaborator sends one invitation for the project. Validation
// failures return before any request is made; transport and server
// failures collapse into ErrInviteFailed.
func (s *service) InviteCollaborator(ctx context.Context, projectID int, email string, role models.CollaboratorRole) (string, error) {
	if projectID <= 0 {
		return "", ErrInvalidProjectID
	}
	if !validate.Required(email) {
		return "", ErrEmailRequired
	}
	if !validate.Email(email) {
		return "", ErrEmailInvalid
	}
	if role == "" {
		return "", ErrRoleRequired
	}

	body := struct {
		Email string                  `json:"email"`
		Role  models.CollaboratorRole `json:"role"`
	}{Email: email, Role: role}

	var resp struct {
		Message string `json:"message"`
	}
	path := fmt.Sprintf("/projects/%d/collaborators", projectID)
	if err := s.api.Post(ctx, path, body, &resp); err != nil {
		slog.Error("invite failed", "project_id", projectID, "error", err)
		return "", ErrInviteFailed
	}
	return resp.Message, nil
}

// Respond accepts or rejects one invitation. The status transition is
// authoritative on the server; the caller re-fetches the invitation list
// afterwards instead of updating it locally.
func (s *service) Respond(ctx context.Context, projectID, invitationID int, action ResponseAction) (string, error) {
	if projectID <= 0 {
		return "", ErrInvalidProjectID
	}
	if invitationID <= 0 {
		return "", ErrInvalidInvitationID
	}
	if action != ActionAccept && action != ActionReject {
		return "", ErrInvalidAction
	}

	var resp struct {
		Message string `json:"message"`
	}
	path := fmt.Sprintf("/projects/%d/collaborators/invitations/%d/%s", projectID, invitationID, action)
	if err := s.api.Post(ctx, path, nil, &resp); err != nil {
		slog.Error("invitation response failed", "project_id", projectID, "invitation_id", invitationID, "error", err)
		return "", ErrRespondFailed
	}
	return resp.Message, nil
}
