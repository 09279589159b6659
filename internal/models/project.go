package models

// Project represents a research collaboration project.
// Identity is assigned by the backend on create; ID stays zero until then.
type Project struct {
	ID             int      `json:"id,omitempty"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Status         string   `json:"status"`
	Visibility     string   `json:"visibility"`
	RequiredSkills []string `json:"required_skills"`
	OwnerID        int      `json:"owner_id,omitempty"`
}

// Normalize replaces a nil skill list with an empty one.
// Rendered forms always see a list, never nil.
func (p *Project) Normalize() {
	if p.RequiredSkills == nil {
		p.RequiredSkills = []string{}
	}
}
