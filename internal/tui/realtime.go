package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-stream-panel/internal/adapter"
	"github.com/MKhiriev/go-stream-panel/internal/service"
	"github.com/MKhiriev/go-stream-panel/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// realtimeModel demonstrates the change feed: it shows the connection state,
// the count of change-driven refreshes, roster totals and the most recent
// records, all updating live as mutations land on the server. The add-test
// action inserts a throwaway member so the propagation can be watched from
// a second panel instance.
type realtimeModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	syncer  service.Synchronizer

	roster []models.User
	status string
	errMsg string
	adding bool
}

func newRealtimeModel(ctx context.Context, serverAdapter adapter.ServerAdapter, syncer service.Synchronizer) *realtimeModel {
	return &realtimeModel{ctx: ctx, adapter: serverAdapter, syncer: syncer}
}

func (m *realtimeModel) Init() tea.Cmd {
	m.roster = m.syncer.Snapshot()
	m.errMsg = ""
	return m.cmdRefresh()
}

func (m *realtimeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rosterLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.roster = msg.roster
		return m, nil

	case rosterChangedMsg:
		m.roster = msg.roster
		return m, nil

	case memberSavedMsg:
		m.adding = false
		if msg.err != nil {
			m.errMsg = saveErrorMessage(msg.err)
			return m, nil
		}
		m.status = "Test user added"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: "admin"} }
		case key.Matches(msg, keys.addTest):
			if m.adding {
				return m, nil
			}
			m.adding = true
			m.errMsg = ""
			return m, m.cmdAddTestUser()
		}
	}

	return m, nil
}

func (m *realtimeModel) View() string {
	var b strings.Builder

	dot := offStyle.Render("●") + " disconnected"
	if m.syncer.Connected() {
		dot = liveStyle.Render("●") + " connected"
	}
	b.WriteString(dot + "\n\n")

	live := 0
	for _, user := range m.roster {
		if user.Status == models.StatusLive {
			live++
		}
	}
	b.WriteString(fmt.Sprintf("Updates received  %d\n", m.syncer.Updates()))
	b.WriteString(fmt.Sprintf("Total members     %d\n", len(m.roster)))
	b.WriteString(fmt.Sprintf("Live members      %d\n\n", live))

	b.WriteString("Recent members\n")
	recent := m.roster
	if len(recent) > 5 {
		recent = recent[:5]
	}
	if len(recent) == 0 {
		b.WriteString("  -\n")
	}
	for _, user := range recent {
		b.WriteString("  " + fitText(user.Email, 34) + "  " + renderStatus(string(user.Status)) + "\n")
	}

	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}
	if m.adding {
		b.WriteString("\n[Adding test user...]\n")
	}

	return renderPage("REALTIME", strings.TrimRight(b.String(), "\n"), "a: add test user │ esc: back")
}

func (m *realtimeModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	syncer := m.syncer
	return func() tea.Msg {
		roster, err := syncer.Refresh(ctx)
		return rosterLoadedMsg{roster: roster, err: err}
	}
}

func (m *realtimeModel) cmdAddTestUser() tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	return func() tea.Msg {
		now := time.Now()
		_, err := serverAdapter.Insert(ctx, models.User{
			Email:      fmt.Sprintf("test%d@example.com", now.Unix()),
			Password:   "test123456",
			Status:     models.StatusLive,
			ExpireTime: now.AddDate(0, 0, 30),
		})
		return memberSavedMsg{err: err}
	}
}
