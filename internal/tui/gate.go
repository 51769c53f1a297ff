package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-stream-panel/internal/adapter"
	"github.com/MKhiriev/go-stream-panel/internal/session"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// gateModel is the admin access code prompt. The shared code is exchanged
// for a gate token that authorises all roster requests; a verification
// already done earlier in this process is reused without asking again.
type gateModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	session *session.Store

	input      textinput.Model
	submitting bool
	errMsg     string
}

func newGateModel(ctx context.Context, serverAdapter adapter.ServerAdapter, sessionStore *session.Store) *gateModel {
	codeInput := textinput.New()
	codeInput.Placeholder = "access code"
	codeInput.CharLimit = 6
	codeInput.Width = 20
	codeInput.EchoMode = textinput.EchoPassword
	codeInput.EchoCharacter = '*'
	codeInput.Focus()

	return &gateModel{ctx: ctx, adapter: serverAdapter, session: sessionStore, input: codeInput}
}

func (m *gateModel) Init() tea.Cmd {
	// skip the prompt when the gate was already passed in this process
	if token, ok := m.session.AdminVerified(); ok {
		m.adapter.SetToken(token)
		return func() tea.Msg { return NavigateTo{Page: "admin"} }
	}
	return textinput.Blink
}

func (m *gateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(gateDoneMsg); ok {
		m.submitting = false
		switch {
		case result.wrongCode:
			m.errMsg = "Wrong access code"
			m.input.SetValue("")
		case result.err != nil:
			m.errMsg = humanizeServerUnavailableError(result.err)
		default:
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "admin"} }
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "login"} }
		case "enter":
			if m.submitting {
				return m, nil
			}

			code := strings.TrimSpace(m.input.Value())
			if code == "" {
				m.errMsg = "Enter the access code"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdVerify(code)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *gateModel) View() string {
	var b strings.Builder
	b.WriteString("Enter the admin access code to continue.\n\n")
	b.WriteString("Code [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Verifying...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ADMIN ACCESS", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: verify")
}

func (m *gateModel) cmdVerify(code string) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	sessionStore := m.session

	return func() tea.Msg {
		token, err := serverAdapter.VerifyAccessCode(ctx, code)
		if errors.Is(err, adapter.ErrUnauthorized) {
			return gateDoneMsg{wrongCode: true, err: err}
		}
		if err != nil {
			return gateDoneMsg{err: err}
		}

		sessionStore.MarkAdminVerified(token)
		return gateDoneMsg{}
	}
}
