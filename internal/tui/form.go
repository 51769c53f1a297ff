package tui

import (
	"strings"

	"github.com/MKhiriev/go-stream-panel/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const expiryPlaceholder = "2027-01-02T15:04"

// memberFormModel is the add-member form embedded in the admin screen.
// Status is a Live/Off toggle rather than a free-text input.
type memberFormModel struct {
	inputs []textinput.Model
	focus  int
	status models.Status
	errMsg string
}

func newMemberFormModel() memberFormModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40

	expiryInput := textinput.New()
	expiryInput.Placeholder = expiryPlaceholder
	expiryInput.CharLimit = 25
	expiryInput.Width = 40

	return memberFormModel{
		inputs: []textinput.Model{emailInput, passwordInput, expiryInput},
		status: models.StatusLive,
	}
}

// draft assembles the form values into the wire draft the server validates.
func (m memberFormModel) draft() models.UserDraft {
	return models.UserDraft{
		Email:      strings.TrimSpace(m.inputs[0].Value()),
		Password:   m.inputs[1].Value(),
		Status:     m.status,
		ExpireTime: strings.TrimSpace(m.inputs[2].Value()),
	}
}

func (m memberFormModel) update(msg tea.Msg) (memberFormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "tab", "down":
			m = m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m = m.focusPrev()
			return m, nil
		case "left", "right":
			if m.focus == len(m.inputs) {
				m.status = toggleStatus(m.status)
				return m, nil
			}
		}
	}

	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m memberFormModel) view() string {
	var b strings.Builder
	b.WriteString("New member\n\n")
	b.WriteString("Email    [" + m.inputs[0].View() + "]\n")
	b.WriteString("Password [" + m.inputs[1].View() + "]\n")
	b.WriteString("Expiry   [" + m.inputs[2].View() + "]\n")

	marker := "  "
	if m.focus == len(m.inputs) {
		marker = "> "
	}
	b.WriteString(marker + "Status   < " + renderStatus(string(m.status)) + " >\n")

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc: cancel │ tab: next field │ ←/→: toggle status │ enter: save"))
	return b.String()
}

func (m memberFormModel) focusNext() memberFormModel {
	return m.setFocus((m.focus + 1) % (len(m.inputs) + 1))
}

func (m memberFormModel) focusPrev() memberFormModel {
	return m.setFocus((m.focus + len(m.inputs)) % (len(m.inputs) + 1))
}

func (m memberFormModel) setFocus(focus int) memberFormModel {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = focus
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
	return m
}

func toggleStatus(status models.Status) models.Status {
	if status == models.StatusLive {
		return models.StatusOff
	}
	return models.StatusLive
}
