package project

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/research-collab/collab-cli/internal/api"
	"github.com/research-collab/collab-cli/internal/models"
)

type noToken struct{}

func (noToken) Token() string { return "" }

func newTestService(t *testing.T, handler http.HandlerFunc) Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewService(api.NewClient(server.URL, noToken{}))
}

// deadService returns a service pointed at a server that has already
// been shut down, so every request fails at the transport level.
func deadService(t *testing.T) Service {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	return NewService(api.NewClient(server.URL, noToken{}))
}

// TestListAllFailsOpen verifies a dead server reads as an empty list,
// never as an error or nil.
func TestListAllFailsOpen(t *testing.T) {
	svc := deadService(t)

	projects := svc.ListAll(context.Background())
	if projects == nil {
		t.Fatal("ListAll returned nil, want empty slice")
	}
	if len(projects) != 0 {
		t.Errorf("ListAll on dead server = %d projects, want 0", len(projects))
	}
}

// TestListAllServerError verifies a 500 also reads as an empty list.
func TestListAllServerError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if got := svc.ListAll(context.Background()); len(got) != 0 {
		t.Errorf("ListAll on 500 = %d projects, want 0", len(got))
	}
}

// TestListAllUnwrapsEnvelope verifies the {"projects": [...]} envelope
// is unwrapped and nil skill lists are normalized to empty ones.
func TestListAllUnwrapsEnvelope(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects" {
			t.Errorf("path = %q, want /projects", r.URL.Path)
		}
		w.Write([]byte(`{"projects":[
			{"id":1,"title":"Alpha","status":"open","visibility":"private"},
			{"id":2,"title":"Beta","status":"closed","visibility":"public","required_skills":["go","sql"]}
		]}`))
	})

	projects := svc.ListAll(context.Background())
	if len(projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(projects))
	}
	if projects[0].RequiredSkills == nil {
		t.Error("missing required_skills should normalize to empty slice, got nil")
	}
	if !reflect.DeepEqual(projects[1].RequiredSkills, []string{"go", "sql"}) {
		t.Errorf("RequiredSkills = %v, want [go sql]", projects[1].RequiredSkills)
	}
}

// TestListMinePath verifies the owned-projects listing hits its own
// endpoint.
func TestListMinePath(t *testing.T) {
	var gotPath string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"projects":[]}`))
	})

	svc.ListMine(context.Background())
	if gotPath != "/projects/user" {
		t.Errorf("path = %q, want /projects/user", gotPath)
	}
}

// TestGetByIDNotFound verifies a missing project reads as nil, same as
// a failed fetch.
func TestGetByIDNotFound(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"project not found"}`))
	})

	if p := svc.GetByID(context.Background(), 99); p != nil {
		t.Errorf("GetByID(99) = %+v, want nil", p)
	}
}

// TestGetByIDKeepsSkillOrder verifies the read side of the round trip:
// skills come back in exactly the stored order.
func TestGetByIDKeepsSkillOrder(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/3" {
			t.Errorf("path = %q, want /projects/3", r.URL.Path)
		}
		w.Write([]byte(`{"id":3,"title":"Retro","required_skills":["zig","apl","cobol","basic"]}`))
	})

	p := svc.GetByID(context.Background(), 3)
	if p == nil {
		t.Fatal("GetByID returned nil")
	}
	if !reflect.DeepEqual(p.RequiredSkills, []string{"zig", "apl", "cobol", "basic"}) {
		t.Errorf("RequiredSkills = %v, want stored order", p.RequiredSkills)
	}
}

func TestGetByIDInvalidID(t *testing.T) {
	// No server at all: an invalid id must not produce a request.
	svc := NewService(api.NewClient("http://127.0.0.1:0", noToken{}))
	if p := svc.GetByID(context.Background(), 0); p != nil {
		t.Errorf("GetByID(0) = %+v, want nil", p)
	}
	if p := svc.GetByID(context.Background(), -3); p != nil {
		t.Errorf("GetByID(-3) = %+v, want nil", p)
	}
}

// TestSkillOrderRoundTrip verifies the skill list is carried through a
// create exactly as given. Order is meaningful and never sorted.
func TestSkillOrderRoundTrip(t *testing.T) {
	var sent models.Project
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&sent); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte(`{"message":"Project created"}`))
	})

	skills := []string{"zig", "apl", "cobol", "basic"}
	_, err := svc.Create(context.Background(), models.Project{
		Title:          "Retro",
		RequiredSkills: skills,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !reflect.DeepEqual(sent.RequiredSkills, skills) {
		t.Errorf("skills on the wire = %v, want %v (same order)", sent.RequiredSkills, skills)
	}
}

// TestCreateEmptyTitle verifies the title check runs before any request.
func TestCreateEmptyTitle(t *testing.T) {
	var count atomic.Int64
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		count.Add(1)
	})

	_, err := svc.Create(context.Background(), models.Project{})
	if !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("Create() error = %v, want ErrEmptyTitle", err)
	}
	if n := count.Load(); n != 0 {
		t.Errorf("server saw %d requests, want 0", n)
	}
}

// TestCreateFailureCollapses verifies server failures on create surface
// as the one fixed error.
func TestCreateFailureCollapses(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"whatever the server said"}`))
	})

	_, err := svc.Create(context.Background(), models.Project{Title: "X"})
	if !errors.Is(err, ErrCreateFailed) {
		t.Errorf("Create() error = %v, want ErrCreateFailed", err)
	}
}

// TestUpdatePropagatesError verifies Update, unlike the reads and
// Create, hands the underlying failure to the caller.
func TestUpdatePropagatesError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"only the owner can update a project"}`))
	})

	_, err := svc.Update(context.Background(), 5, models.Project{Title: "X"})
	if err == nil {
		t.Fatal("Update on 403 returned nil error")
	}

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("Update error should wrap *api.Error, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusForbidden {
		t.Errorf("Status = %d, want 403", apiErr.Status)
	}
}

// TestUpdateSendsPut verifies the update is a PUT of the full project to
// its resource path and the echoed project comes back normalized.
func TestUpdateSendsPut(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if r.URL.Path != "/projects/5" {
			t.Errorf("path = %q, want /projects/5", r.URL.Path)
		}
		w.Write([]byte(`{"id":5,"title":"Renamed","status":"open","visibility":"private"}`))
	})

	updated, err := svc.Update(context.Background(), 5, models.Project{Title: "Renamed"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Errorf("Title = %q", updated.Title)
	}
	if updated.RequiredSkills == nil {
		t.Error("echoed project should be normalized, got nil skills")
	}
}

// TestListInvitationsFailsOpen verifies "none pending" and "fetch
// failed" are indistinguishable: both are an empty list.
func TestListInvitationsFailsOpen(t *testing.T) {
	svc := deadService(t)
	if got := svc.ListInvitations(context.Background()); got == nil || len(got) != 0 {
		t.Errorf("ListInvitations on dead server = %v, want empty slice", got)
	}
}

func TestListInvitationsUnwrapsEnvelope(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/invitations" {
			t.Errorf("path = %q, want /projects/invitations", r.URL.Path)
		}
		w.Write([]byte(`{"invitations":[
			{"id":1,"project_id":101,"project_title":"Alpha","inviter_name":"Ada","role":"researcher","status":"pending"}
		]}`))
	})

	invitations := svc.ListInvitations(context.Background())
	if len(invitations) != 1 {
		t.Fatalf("got %d invitations, want 1", len(invitations))
	}
	if invitations[0].ProjectID != 101 || invitations[0].Role != models.RoleResearcher {
		t.Errorf("invitation = %+v", invitations[0])
	}
}

// TestRespondPath verifies the action is part of the URL, the body is an
// empty JSON object, and the endpoint is hit exactly once.
func TestRespondPath(t *testing.T) {
	var count atomic.Int64
	var gotPath, gotBody string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		count.Add(1)
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Write([]byte(`{"message":"Invitation accepted"}`))
	})

	msg, err := svc.Respond(context.Background(), 101, 1, ActionAccept)
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if msg != "Invitation accepted" {
		t.Errorf("message = %q", msg)
	}
	if gotPath != "/projects/101/collaborators/invitations/1/accept" {
		t.Errorf("path = %q", gotPath)
	}
	if gotBody != "{}" {
		t.Errorf("body = %q, want \"{}\"", gotBody)
	}
	if n := count.Load(); n != 1 {
		t.Errorf("server saw %d requests, want 1", n)
	}
}

// TestRespondInvalidAction verifies only accept and reject dispatch.
func TestRespondInvalidAction(t *testing.T) {
	var count atomic.Int64
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		count.Add(1)
	})

	_, err := svc.Respond(context.Background(), 101, 1, ResponseAction("maybe"))
	if !errors.Is(err, ErrInvalidAction) {
		t.Errorf("Respond() error = %v, want ErrInvalidAction", err)
	}
	if n := count.Load(); n != 0 {
		t.Errorf("server saw %d requests, want 0", n)
	}
}

// TestInviteValidation verifies every format check runs before the
// request and each failure names its cause.
func TestInviteValidation(t *testing.T) {
	var count atomic.Int64
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		count.Add(1)
	})
	ctx := context.Background()

	cases := []struct {
		name      string
		projectID int
		email     string
		role      models.CollaboratorRole
		wantErr   error
	}{
		{"bad project id", 0, "a@b.co", models.RoleResearcher, ErrInvalidProjectID},
		{"empty email", 7, "", models.RoleResearcher, ErrEmailRequired},
		{"bad email", 7, "nope", models.RoleResearcher, ErrEmailInvalid},
		{"empty role", 7, "a@b.co", "", ErrRoleRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.InviteCollaborator(ctx, tc.projectID, tc.email, tc.role)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("InviteCollaborator() error = %v, want %v", err, tc.wantErr)
			}
		})
	}

	if n := count.Load(); n != 0 {
		t.Errorf("server saw %d requests, want 0", n)
	}
}

// TestInviteSuccess verifies the request shape and that free-form roles
// are allowed; the suggested set is not a whitelist.
func TestInviteSuccess(t *testing.T) {
	var gotPath string
	var sent struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&sent); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte(`{"message":"Invitation sent"}`))
	})

	msg, err := svc.InviteCollaborator(context.Background(), 7, "bo@example.org", models.CollaboratorRole("statistician"))
	if err != nil {
		t.Fatalf("InviteCollaborator: %v", err)
	}
	if msg != "Invitation sent" {
		t.Errorf("message = %q", msg)
	}
	if gotPath != "/projects/7/collaborators" {
		t.Errorf("path = %q", gotPath)
	}
	if sent.Email != "bo@example.org" || sent.Role != "statistician" {
		t.Errorf("body = %+v", sent)
	}
}

// TestInviteFailureCollapses verifies server rejections surface as the
// one fixed error, whatever the reason.
func TestInviteFailureCollapses(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"already invited"}`))
	})

	_, err := svc.InviteCollaborator(context.Background(), 7, "bo@example.org", models.RoleEditor)
	if !errors.Is(err, ErrInviteFailed) {
		t.Errorf("InviteCollaborator() error = %v, want ErrInviteFailed", err)
	}
}
