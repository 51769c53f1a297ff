// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-stream-panel/internal/adapter"
	"github.com/MKhiriev/go-stream-panel/internal/config"
	"github.com/MKhiriev/go-stream-panel/internal/session"
	"github.com/MKhiriev/go-stream-panel/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the sign-in screen. It renders the
// email and password inputs plus a remember-me toggle, and dispatches an
// async sign-in command on form submission. A successful sign-in establishes
// the local session and navigates to the gate (administrator) or the welcome
// screen (member).
type LoginModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	session *session.Store
	app     config.PanelApp

	inputs     []textinput.Model
	focus      int
	remember   bool
	submitting bool
	errMsg     string
}

// newLoginModel creates a [LoginModel] with pre-configured email and password
// inputs. Remembered credentials, if any, prefill the form and arm the
// remember-me toggle.
func newLoginModel(ctx context.Context, serverAdapter adapter.ServerAdapter, sessionStore *session.Store, app config.PanelApp) *LoginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	m := &LoginModel{
		ctx:     ctx,
		adapter: serverAdapter,
		session: sessionStore,
		app:     app,
		inputs:  []textinput.Model{emailInput, passwordInput},
	}

	if creds, ok := sessionStore.Remembered(); ok {
		m.inputs[0].SetValue(creds.Email)
		m.inputs[1].SetValue(creds.Password)
		m.remember = true
	}

	return m
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the
// active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginDoneMsg); ok {
		m.submitting = false
		switch {
		case result.rejected:
			m.errMsg = result.response.Message
		case result.err != nil:
			m.errMsg = humanizeServerUnavailableError(result.err)
		default:
			m.errMsg = ""
			page := "welcome"
			if result.response.Admin {
				page = "gate"
			}
			return m, func() tea.Msg { return NavigateTo{Page: page} }
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case " ":
			if m.focus == 2 {
				m.remember = !m.remember
				return m, nil
			}
		case "enter":
			if m.focus == 2 {
				m.remember = !m.remember
				return m, nil
			}
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if email == "" || password == "" {
				m.errMsg = "Email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, password)
		}
	}

	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Email    [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	check := "[ ]"
	if m.remember {
		check = "[x]"
	}
	marker := "  "
	if m.focus == 2 {
		marker = "> "
	}
	b.WriteString("\n")
	b.WriteString(marker)
	b.WriteString(check)
	b.WriteString(" Remember me\n")

	if m.submitting {
		b.WriteString("\n[Signing In...]\n")
	} else {
		b.WriteString("\n[Sign In]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	if m.app.Version != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("v" + m.app.Version))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ space: toggle │ enter: submit")
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	sessionStore := m.session
	remember := m.remember
	creds := models.Credentials{Email: email, Password: password}

	return func() tea.Msg {
		resp, err := serverAdapter.Login(ctx, creds)
		if errors.Is(err, adapter.ErrUnauthorized) {
			return loginDoneMsg{response: resp, rejected: true, err: err}
		}
		if err != nil {
			return loginDoneMsg{err: err}
		}

		if err = sessionStore.Establish(resp.User, resp.Admin); err != nil {
			return loginDoneMsg{err: err}
		}
		if remember {
			_ = sessionStore.Remember(creds)
		} else {
			_ = sessionStore.Forget()
		}

		return loginDoneMsg{response: resp}
	}
}

func (m *LoginModel) focusNext() {
	m.setFocus((m.focus + 1) % 3)
}

func (m *LoginModel) focusPrev() {
	m.setFocus((m.focus + 2) % 3)
}

func (m *LoginModel) setFocus(focus int) {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = focus
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}
