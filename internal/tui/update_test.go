package tui

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/research-collab/collab-cli/internal/app"
	"github.com/research-collab/collab-cli/internal/models"
	"github.com/research-collab/collab-cli/internal/services/account"
	"github.com/research-collab/collab-cli/internal/session"
	"github.com/research-collab/collab-cli/internal/tui/state"
)

// setupTestModel builds a model against a test backend. The handler may
// be nil when the test never dispatches a command.
func setupTestModel(t *testing.T, handler http.HandlerFunc) Model {
	t.Helper()
	if handler == nil {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}
	}
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := session.NewStoreAt(filepath.Join(t.TempDir(), "session.yaml"))
	return InitialModel(app.New(server.URL, store))
}

func asModel(t *testing.T, m tea.Model) Model {
	t.Helper()
	model, ok := m.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", m)
	}
	return model
}

// TestInitialModeWithoutSession verifies a fresh client starts at the
// login form.
func TestInitialModeWithoutSession(t *testing.T) {
	m := setupTestModel(t, nil)

	if m.UiState.Mode() != state.LoginMode {
		t.Errorf("initial mode = %v, want LoginMode", m.UiState.Mode())
	}
	if m.FormState.Form == nil {
		t.Error("login form should be created on startup")
	}
}

// TestInitialModeWithSession verifies a stored token skips login. The
// token is not verified; a stale one just produces empty lists later.
func TestInitialModeWithSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"projects":[]}`))
	}))
	t.Cleanup(server.Close)

	store := session.NewStoreAt(filepath.Join(t.TempDir(), "session.yaml"))
	if err := store.SetToken("stored"); err != nil {
		t.Fatal(err)
	}

	m := InitialModel(app.New(server.URL, store))
	if m.UiState.Mode() != state.ProjectsMode {
		t.Errorf("initial mode = %v, want ProjectsMode", m.UiState.Mode())
	}
	if m.Init() == nil {
		t.Error("Init() should load projects when already logged in")
	}
}

// TestLoginResultPersistsSession verifies the login handler stores the
// token and user id; the account service itself never touches the store.
func TestLoginResultPersistsSession(t *testing.T) {
	m := setupTestModel(t, nil)

	updated, cmd := m.Update(loginResultMsg{
		result: account.LoginResult{Token: "jwt-abc", UserID: "7", Message: "Login successful"},
	})
	m = asModel(t, updated)

	if got := m.app.Session.Token(); got != "jwt-abc" {
		t.Errorf("persisted token = %q, want \"jwt-abc\"", got)
	}
	if got := m.app.Session.UserID(); got != "7" {
		t.Errorf("persisted user id = %q, want \"7\"", got)
	}
	if m.UiState.Mode() != state.ProjectsMode {
		t.Errorf("mode after login = %v, want ProjectsMode", m.UiState.Mode())
	}
	if cmd == nil {
		t.Error("login should trigger a projects load")
	}
}

// TestLoginFailureStaysOnForm verifies a failed login re-opens the form
// with an error notification and nothing persisted.
func TestLoginFailureStaysOnForm(t *testing.T) {
	m := setupTestModel(t, nil)

	updated, _ := m.Update(loginResultMsg{err: errors.New("invalid credentials")})
	m = asModel(t, updated)

	if m.UiState.Mode() != state.LoginMode {
		t.Errorf("mode after failed login = %v, want LoginMode", m.UiState.Mode())
	}
	if !m.NotificationState.IsError() {
		t.Error("failed login should show an error notification")
	}
	if got := m.app.Session.Token(); got != "" {
		t.Errorf("token persisted on failure: %q", got)
	}
}

// TestRespondTriggersExactlyOneRefetch verifies answering an invitation
// schedules one list re-fetch, success or failure alike.
func TestRespondTriggersExactlyOneRefetch(t *testing.T) {
	m := setupTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"invitations":[{"id":2,"project_id":102}]}`))
	})

	for _, msg := range []respondResultMsg{
		{message: "Invitation accepted"},
		{err: errors.New("failed to respond to invitation")},
	} {
		updated, cmd := m.Update(msg)
		m = asModel(t, updated)

		if !m.InvitationsState.Loading() {
			t.Error("list should be marked loading while the re-fetch runs")
		}
		if cmd == nil {
			t.Fatal("respond result must schedule a re-fetch")
		}

		// The single command is the re-fetch; running it must yield the
		// refreshed list and nothing else.
		result := cmd()
		loaded, ok := result.(invitationsLoadedMsg)
		if !ok {
			t.Fatalf("re-fetch produced %T, want invitationsLoadedMsg", result)
		}
		if len(loaded.invitations) != 1 || loaded.invitations[0].ID != 2 {
			t.Errorf("re-fetched invitations = %+v", loaded.invitations)
		}
	}
}

// TestEmptyInvitationsShowFixedLine verifies the view renders the fixed
// empty-state message after an empty load.
func TestEmptyInvitationsShowFixedLine(t *testing.T) {
	m := setupTestModel(t, nil)
	m.UiState.SetMode(state.InvitationsMode)
	m.UiState.SetSize(100, 40)

	updated, _ := m.Update(invitationsLoadedMsg{invitations: []models.Invitation{}})
	m = asModel(t, updated)

	if m.InvitationsState.Message() != state.NoPendingMessage {
		t.Errorf("message = %q, want %q", m.InvitationsState.Message(), state.NoPendingMessage)
	}
	view := m.View()
	if !strings.Contains(view.Content, state.NoPendingMessage) {
		t.Errorf("view does not show %q", state.NoPendingMessage)
	}
}

// TestInviteSuccessSchedulesClose verifies a successful invitation shows
// its message and schedules the delayed modal close; a failure keeps the
// modal open with the fixed failure line and no close.
func TestInviteSuccessSchedulesClose(t *testing.T) {
	m := setupTestModel(t, nil)
	m.openInviteForm(7)

	updated, cmd := m.Update(inviteResultMsg{message: "Invitation sent"})
	m = asModel(t, updated)

	if m.UiState.Mode() != state.InviteFormMode {
		t.Error("modal should stay open until the close message arrives")
	}
	if m.NotificationState.IsError() {
		t.Error("success should not be an error notification")
	}
	if cmd == nil {
		t.Fatal("success must schedule the delayed close")
	}

	// The command is the delayed close timer; it emits the close message
	// once after the linger delay.
	start := time.Now()
	result := cmd()
	if _, ok := result.(inviteModalCloseMsg); !ok {
		t.Fatalf("scheduled command produced %T, want inviteModalCloseMsg", result)
	}
	if elapsed := time.Since(start); elapsed < inviteCloseDelay {
		t.Errorf("close emitted after %v, want at least %v", elapsed, inviteCloseDelay)
	}
}

func TestInviteFailureKeepsModalOpen(t *testing.T) {
	m := setupTestModel(t, nil)
	m.openInviteForm(7)

	updated, cmd := m.Update(inviteResultMsg{err: errors.New("failed to send invitation")})
	m = asModel(t, updated)

	if m.UiState.Mode() != state.InviteFormMode {
		t.Error("modal must stay open on failure")
	}
	if m.FormState.Form == nil {
		t.Error("form must stay available for a retry")
	}
	if m.NotificationState.Message() != "Failed to send invitation." {
		t.Errorf("notification = %q, want the fixed failure line", m.NotificationState.Message())
	}
	// Failure never schedules the close; any command here belongs to the
	// reopened form, not a timer.
	if cmd != nil {
		if _, ok := cmd().(inviteModalCloseMsg); ok {
			t.Error("failure must not schedule a close")
		}
	}
}

// TestInviteModalClose verifies the close message returns to the project
// detail view and clears the form.
func TestInviteModalClose(t *testing.T) {
	m := setupTestModel(t, nil)
	m.openInviteForm(7)

	updated, _ := m.Update(inviteModalCloseMsg{})
	m = asModel(t, updated)

	if m.UiState.Mode() != state.ProjectDetailMode {
		t.Errorf("mode after close = %v, want ProjectDetailMode", m.UiState.Mode())
	}
	if m.FormState.Form != nil {
		t.Error("form should be cleared on close")
	}
}

// TestProjectsLoadedClampsSelection verifies the cursor survives a
// shrinking refresh.
func TestProjectsLoadedClampsSelection(t *testing.T) {
	m := setupTestModel(t, nil)
	m.UiState.SetMode(state.ProjectsMode)
	m.projects = []models.Project{{ID: 1}, {ID: 2}, {ID: 3}}
	m.selectedProject = 2

	updated, _ := m.Update(projectsLoadedMsg{projects: []models.Project{{ID: 1}}})
	m = asModel(t, updated)

	if m.selectedProject != 0 {
		t.Errorf("selectedProject = %d, want 0 after shrink", m.selectedProject)
	}
}
