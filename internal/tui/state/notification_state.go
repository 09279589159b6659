package state

// NotificationState is the single status line shown under the active
// view. One message at a time; a new one replaces the old.
type NotificationState struct {
	message string
	isError bool
}

// NewNotificationState creates an empty notification state.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Info shows a normal status message.
func (s *NotificationState) Info(message string) {
	s.message = message
	s.isError = false
}

// Error shows an error message.
func (s *NotificationState) Error(message string) {
	s.message = message
	s.isError = true
}

// Clear removes the current message.
func (s *NotificationState) Clear() {
	s.message = ""
	s.isError = false
}

func (s *NotificationState) Message() string { return s.message }
func (s *NotificationState) IsError() bool   { return s.isError }
