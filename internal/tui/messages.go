package tui

import (
	"github.com/MKhiriev/go-stream-panel/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page. An optional Payload is delivered to
// the target page right after its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type loginDoneMsg struct {
	response models.LoginResponse
	rejected bool
	err      error
}

type gateDoneMsg struct {
	wrongCode bool
	err       error
}

type rosterLoadedMsg struct {
	roster []models.User
	err    error
}

type rosterChangedMsg struct {
	roster []models.User
}

type memberSavedMsg struct {
	err error
}

type memberDeletedMsg struct {
	err error
}

type loggedOutMsg struct{}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
