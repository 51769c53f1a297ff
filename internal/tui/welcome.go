package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-stream-panel/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// welcomeModel is the member landing screen. It shows the account snapshot
// captured at sign-in; later roster edits do not refresh it.
type welcomeModel struct {
	ctx     context.Context
	session *session.Store
}

func newWelcomeModel(ctx context.Context, sessionStore *session.Store) *welcomeModel {
	return &welcomeModel{ctx: ctx, session: sessionStore}
}

func (m *welcomeModel) Init() tea.Cmd {
	return nil
}

func (m *welcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(loggedOutMsg); ok {
		return m, func() tea.Msg { return NavigateTo{Page: "login"} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "ctrl+l" {
		sessionStore := m.session
		return m, func() tea.Msg {
			_ = sessionStore.Clear()
			return loggedOutMsg{}
		}
	}

	return m, nil
}

func (m *welcomeModel) View() string {
	state := m.session.State()

	var b strings.Builder
	b.WriteString("Signed In!\n\n")

	if state.CurrentUser != nil {
		user := state.CurrentUser
		b.WriteString("Account  " + user.Email + "\n")
		b.WriteString("Status   " + renderStatus(string(user.Status)) + "\n")
		b.WriteString("Expires  " + user.ExpireTime.Format(time.RFC1123) + "\n")
	}

	return renderPage("WELCOME", strings.TrimRight(b.String(), "\n"), "ctrl+l: sign out")
}

func renderStatus(status string) string {
	switch status {
	case "Live":
		return liveStyle.Render(status)
	case "Off":
		return offStyle.Render(status)
	default:
		return status
	}
}
