package huhforms

import (
	"charm.land/huh/v2"

	"github.com/research-collab/collab-cli/internal/models"
)

// InviteForm creates the invite-collaborator form for one project.
func InviteForm(email, role *string) *huh.Form {
	roleOptions := make([]huh.Option[string], 0, len(models.SuggestedRoles))
	for _, r := range models.SuggestedRoles {
		roleOptions = append(roleOptions, huh.NewOption(string(r), string(r)))
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("email").
			Title("Collaborator email").
			Placeholder("them@example.org").
			Validate(validateEmail).
			Value(email),

		huh.NewSelect[string]().
			Key("role").
			Title("Role").
			Options(roleOptions...).
			Value(role),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
