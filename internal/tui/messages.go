package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/kundelik/models"
)

// NavigateTo switches the active page of [RootModel]. Payload, when set, is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult finishes the authentication flow. Offline is set when the user
// chose to continue without an account.
type AuthResult struct {
	User    models.User
	Offline bool
	Err     error
}

// opDoneMsg reports that an asynchronous tracker operation has finished.
type opDoneMsg struct {
	tab tab
	err error
}

// refreshedMsg reports the end of a full reload of every tracker.
type refreshedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
