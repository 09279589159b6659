package state

// Mode identifies which view currently owns the screen and the keyboard.
type Mode int

const (
	LoginMode Mode = iota
	RegisterMode
	ProjectsMode
	ProjectDetailMode
	ProjectFormMode
	InvitationsMode
	InviteFormMode
	ProfileMode
)

// UIState holds screen geometry and the active mode.
type UIState struct {
	mode   Mode
	width  int
	height int
}

// NewUIState creates UI state starting in the given mode.
func NewUIState(mode Mode) *UIState {
	return &UIState{mode: mode}
}

func (s *UIState) Mode() Mode        { return s.mode }
func (s *UIState) SetMode(mode Mode) { s.mode = mode }

func (s *UIState) Width() int  { return s.width }
func (s *UIState) Height() int { return s.height }

func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}
