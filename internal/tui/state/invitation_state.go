package state

import "github.com/research-collab/collab-cli/internal/models"

// NoPendingMessage is the fixed empty-state line for the invitations
// view. An empty list covers both "none pending" and "fetch failed";
// the view shows this one message for both, never an error.
const NoPendingMessage = "No pending invitations."

// InvitationsState is the component-local state of the invitations view.
type InvitationsState struct {
	invitations []models.Invitation
	selected    int
	loading     bool
	message     string
}

// NewInvitationsState creates an empty, loading invitations state.
func NewInvitationsState() *InvitationsState {
	return &InvitationsState{loading: true}
}

// SetInvitations stores a freshly fetched list and derives the
// empty-state message in one assignment.
func (s *InvitationsState) SetInvitations(invitations []models.Invitation) {
	s.loading = false
	s.invitations = invitations
	if len(invitations) == 0 {
		s.message = NoPendingMessage
	} else {
		s.message = ""
	}
	if s.selected >= len(invitations) {
		s.selected = 0
	}
}

// StartLoading marks a fetch as in flight.
func (s *InvitationsState) StartLoading() {
	s.loading = true
}

func (s *InvitationsState) Invitations() []models.Invitation { return s.invitations }
func (s *InvitationsState) Loading() bool                    { return s.loading }
func (s *InvitationsState) Message() string                  { return s.message }

// Selected returns the highlighted invitation, or nil when none.
func (s *InvitationsState) Selected() *models.Invitation {
	if len(s.invitations) == 0 || s.selected >= len(s.invitations) {
		return nil
	}
	return &s.invitations[s.selected]
}

func (s *InvitationsState) MoveUp() {
	if s.selected > 0 {
		s.selected--
	}
}

func (s *InvitationsState) MoveDown() {
	if s.selected < len(s.invitations)-1 {
		s.selected++
	}
}
