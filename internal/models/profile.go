package models

// Profile holds the user-editable profile attached to an account.
// Email is read only; it comes from the account and is never sent on update.
type Profile struct {
	FullName    string `json:"full_name"`
	Affiliation string `json:"affiliation"`
	Bio         string `json:"bio"`
	Email       string `json:"email,omitempty"`

	// Optional fields the platform tracks but does not require
	Skills   string `json:"skills,omitempty"`
	Location string `json:"location,omitempty"`
	GitHub   string `json:"github,omitempty"`
}
