package huhforms

import (
	"charm.land/huh/v2"
)

// ProfileForm creates the profile editor. Email is read only and is not
// a field here; it is displayed by the view instead.
func ProfileForm(fullName, affiliation, bio *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("full_name").
			Title("Full name").
			Validate(validateRequired("full name is required")).
			Value(fullName),

		huh.NewInput().
			Key("affiliation").
			Title("Affiliation").
			Value(affiliation),

		huh.NewText().
			Key("bio").
			Title("Bio").
			CharLimit(500).
			Lines(3).
			Value(bio),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
