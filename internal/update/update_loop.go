package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/views"
)

func (m Model) Init() tea.Cmd {
	return m.nextTickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}
		if m.Form.Active {
			return m.handleFormKey(typed)
		}
		if m.SubjectPrompt {
			return m.handleSubjectKey(typed)
		}

		switch typed.String() {
		case m.Keys.Palette:
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown"}
			} else {
				m.Status = StatusBar{Text: "help hidden"}
			}
			return m, nil
		case m.Keys.AddForm:
			m.openForm()
			return m, nil
		case m.Keys.Subject:
			return m.toggleSubject(), nil
		case m.Keys.PrevDay:
			return m.shiftView(-1), nil
		case m.Keys.NextDay:
			return m.shiftView(1), nil
		case m.Keys.Today:
			m.Planner.GoToday()
			m.refresh()
			return m, nil
		case m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		return m.handleBoardKey(typed), nil
	case ClockTickMsg:
		m.Clock = typed.At
		return m, m.nextTickCmd()
	case ReloadMsg:
		m.refresh()
		if !m.Status.IsError {
			m.Status = StatusBar{Text: "board reloaded"}
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		if typed.Err != nil {
			m.setError(typed.Err)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	mode := ""
	if m.Planner.InSubjectMode() {
		mode = m.Planner.Filter().Label()
	}

	overlays := []string{
		m.renderForm(),
		views.RenderSubjectPrompt(m.SubjectPrompt, m.subjectInput.Value()),
		views.RenderCommandPalette(m.Palette.Active, m.Palette.Input),
		m.renderHelpIfVisible(),
	}
	overlay := make([]string, 0, len(overlays))
	for _, o := range overlays {
		if strings.TrimSpace(o) != "" {
			overlay = append(overlay, o)
		}
	}

	detail := ""
	if m.DetailVisible {
		if card, ok := m.selectedCard(); ok {
			detail = views.RenderDetail(&card)
		}
	}

	return views.RenderApp(views.AppData{
		Greeting:     m.Planner.Greeting(),
		Header:       m.Planner.Header(m.Clock),
		Mode:         mode,
		Board:        m.renderBoard(),
		Overlay:      strings.Join(overlay, "\n\n"),
		Detail:       detail,
		StatusLine:   status,
		Notification: m.renderNotificationsView(),
		Footer: fmt.Sprintf("keys: %s add | %s grab | %s drop | %s +1 day | %s delete | %s subject | %s/%s day | %s cmd | %s help | %s quit",
			m.Keys.AddForm, m.Keys.Grab, m.Keys.Drop, m.Keys.Advance, m.Keys.Delete, m.Keys.Subject,
			m.Keys.PrevDay, m.Keys.NextDay, m.Keys.Palette, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}
