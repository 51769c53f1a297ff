// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-stream-panel/internal/adapter"
	"github.com/MKhiriev/go-stream-panel/internal/config"
	"github.com/MKhiriev/go-stream-panel/internal/service"
	"github.com/MKhiriev/go-stream-panel/internal/session"
	"github.com/MKhiriev/go-stream-panel/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// adminModel is the roster management screen. The table is fed by the
// synchronizer cache and refreshes live on change events; mutations go
// straight to the server and rely on the change feed (plus a local prune on
// delete) to update the view.
type adminModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	syncer  service.Synchronizer
	session *session.Store
	app     config.PanelApp

	roster  []models.User
	idx     int
	loading bool
	status  string
	errMsg  string

	showForm      bool
	form          memberFormModel
	saving        bool
	showConfirm   bool
	pendingDelete models.User
}

func newAdminModel(ctx context.Context, serverAdapter adapter.ServerAdapter, syncer service.Synchronizer, sessionStore *session.Store, app config.PanelApp) *adminModel {
	return &adminModel{
		ctx:     ctx,
		adapter: serverAdapter,
		syncer:  syncer,
		session: sessionStore,
		app:     app,
	}
}

func (m *adminModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdRefresh()
}

func (m *adminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rosterLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.setRoster(msg.roster)
		return m, nil

	case rosterChangedMsg:
		m.setRoster(msg.roster)
		return m, nil

	case memberSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.form.errMsg = saveErrorMessage(msg.err)
			return m, nil
		}
		m.showForm = false
		m.form = memberFormModel{}
		m.status = "Member added"
		return m, tea.Batch(m.cmdRefresh(), cmdClearStatus())

	case memberDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		// the cache is already pruned, show it without waiting for the poll
		m.setRoster(m.syncer.Snapshot())
		m.status = "Member deleted"
		return m, cmdClearStatus()

	case copiedMsg:
		m.status = "Password copied"
		return m, cmdClearStatus()

	case copyFailedMsg:
		m.errMsg = "Clipboard unavailable: " + msg.err.Error()
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case loggedOutMsg:
		return m, func() tea.Msg { return NavigateTo{Page: "login"} }

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *adminModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showConfirm {
		if key.Matches(msg, keys.yes) {
			m.showConfirm = false
			target := m.pendingDelete
			m.pendingDelete = models.User{}
			return m, m.cmdDelete(target)
		}
		if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
			m.showConfirm = false
			m.pendingDelete = models.User{}
		}
		return m, nil
	}

	if m.showForm {
		switch msg.String() {
		case "esc":
			m.showForm = false
			m.form = memberFormModel{}
			return m, nil
		case "enter":
			if m.saving {
				return m, nil
			}
			draft := m.form.draft()
			if draft.Email == "" || draft.Password == "" || draft.ExpireTime == "" {
				m.form.errMsg = "All fields are required"
				return m, nil
			}
			expiry, err := draft.Expiry()
			if err != nil {
				m.form.errMsg = "Expiry must look like " + expiryPlaceholder
				return m, nil
			}
			m.form.errMsg = ""
			m.saving = true
			return m, m.cmdCreate(models.User{
				Email:      draft.Email,
				Password:   draft.Password,
				Status:     draft.Status,
				ExpireTime: expiry,
			})
		}

		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.roster)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.newItem):
		m.showForm = true
		m.form = newMemberFormModel()
		return m, textinput.Blink
	case key.Matches(msg, keys.delete):
		if len(m.roster) == 0 {
			return m, nil
		}
		target := m.roster[m.idx]
		if target.Email == m.app.AdminEmail {
			m.errMsg = "The administrator account cannot be deleted"
			return m, nil
		}
		m.errMsg = ""
		m.showConfirm = true
		m.pendingDelete = target
	case key.Matches(msg, keys.copy):
		if len(m.roster) == 0 {
			return m, nil
		}
		return m, cmdCopyPassword(m.roster[m.idx].Password)
	case key.Matches(msg, keys.realtime):
		return m, func() tea.Msg { return NavigateTo{Page: "realtime"} }
	case key.Matches(msg, keys.logout):
		sessionStore := m.session
		serverAdapter := m.adapter
		return m, func() tea.Msg {
			_ = sessionStore.Clear()
			serverAdapter.SetToken("")
			return loggedOutMsg{}
		}
	}

	return m, nil
}

func (m *adminModel) View() string {
	if m.showConfirm {
		content := "Delete \"" + m.pendingDelete.Email + "\"?\n\n"
		content += "y yes    n no"
		return overlayBoxStyle.Render(content)
	}
	if m.showForm {
		return renderPage("ADMIN PANEL", m.form.view(), "")
	}

	var b strings.Builder

	if m.status != "" {
		b.WriteString("OK: " + m.status + "\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg) + "\n\n")
	}

	if m.loading {
		b.WriteString("Loading roster...\n")
	} else {
		b.WriteString(m.renderTable())
	}

	hotKeys := "n: new │ d: delete │ c: copy password │ r: realtime │ ↑/↓: navigate │ ctrl+l: sign out"
	return renderPage("ADMIN PANEL", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *adminModel) renderTable() string {
	if len(m.roster) == 0 {
		return "No members yet. Press n to add the first one.\n"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-30s │ %-6s │ %-16s\n", "EMAIL", "STATUS", "EXPIRES"))
	b.WriteString(strings.Repeat("─", 32) + "┼" + strings.Repeat("─", 8) + "┼" + strings.Repeat("─", 18) + "\n")

	for i, user := range m.roster {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-30s │ %-6s │ %-16s\n",
			cursor,
			fitText(user.Email, 30),
			renderStatus(string(user.Status)),
			user.ExpireTime.Format("2006-01-02 15:04"),
		))
	}

	return b.String()
}

func (m *adminModel) setRoster(roster []models.User) {
	m.roster = roster
	if m.idx >= len(m.roster) {
		m.idx = len(m.roster) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *adminModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	syncer := m.syncer
	return func() tea.Msg {
		roster, err := syncer.Refresh(ctx)
		return rosterLoadedMsg{roster: roster, err: err}
	}
}

func (m *adminModel) cmdCreate(user models.User) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	return func() tea.Msg {
		_, err := serverAdapter.Insert(ctx, user)
		return memberSavedMsg{err: err}
	}
}

func (m *adminModel) cmdDelete(target models.User) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	syncer := m.syncer
	return func() tea.Msg {
		_, err := serverAdapter.Delete(ctx, target.ID)
		if err == nil {
			syncer.Prune(target.ID)
		}
		return memberDeletedMsg{err: err}
	}
}

func cmdCopyPassword(password string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(password); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func saveErrorMessage(err error) string {
	switch {
	case errors.Is(err, adapter.ErrConflict):
		return "A member with this email already exists"
	case errors.Is(err, adapter.ErrBadRequest):
		return err.Error()
	default:
		return humanizeServerUnavailableError(err)
	}
}
