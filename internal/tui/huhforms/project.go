package huhforms

import (
	"charm.land/huh/v2"

	"github.com/research-collab/collab-cli/internal/models"
)

// ProjectForm creates the form for creating or editing a project.
// Skills are edited as a comma-separated line; splitting preserves the
// order the user typed.
func ProjectForm(
	title *string,
	description *string,
	status *string,
	visibility *string,
	skills *string,
	confirm *bool,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter project title...").
			Validate(validateRequired("project title cannot be empty")).
			Value(title),

		huh.NewText().
			Key("description").
			Title("Description (markdown, optional)").
			Placeholder("What is this project about?").
			CharLimit(2000).
			Lines(4).
			Value(description),

		huh.NewSelect[string]().
			Key("status").
			Title("Status").
			Options(
				huh.NewOption("Open", models.ProjectStatusOpen),
				huh.NewOption("Closed", models.ProjectStatusClosed),
			).
			Value(status),

		huh.NewSelect[string]().
			Key("visibility").
			Title("Visibility").
			Options(
				huh.NewOption("Private", models.VisibilityPrivate),
				huh.NewOption("Public", models.VisibilityPublic),
			).
			Value(visibility),

		huh.NewInput().
			Key("skills").
			Title("Required skills (comma separated, in order)").
			Placeholder("python, statistics, ...").
			Value(skills),

		huh.NewConfirm().
			Key("confirm").
			Title("Save this project?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
