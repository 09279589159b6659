package models

// InvitationStatus is the server-side lifecycle state of an invitation.
// Transitions (pending -> accepted/rejected) happen on the server; the
// client only requests them and re-fetches.
type InvitationStatus string

// CollaboratorRole names the role an invited collaborator would take.
// The set is open ended; these are the roles the platform suggests.
type CollaboratorRole string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusRejected InvitationStatus = "rejected"

	RoleResearcher CollaboratorRole = "researcher"
	RoleProgrammer CollaboratorRole = "programmer"
	RoleEditor     CollaboratorRole = "editor"
	RoleOwner      CollaboratorRole = "owner"
)

// Invitation is a pending (or answered) request for a user to join a project.
type Invitation struct {
	ID           int              `json:"id"`
	ProjectID    int              `json:"project_id"`
	ProjectTitle string           `json:"project_title"`
	InviterName  string           `json:"inviter_name"`
	Email        string           `json:"email"`
	Role         CollaboratorRole `json:"role"`
	Status       InvitationStatus `json:"status"`
	CreatedAt    string           `json:"created_at"`
}
