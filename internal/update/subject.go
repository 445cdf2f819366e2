package update

import (
	tea "github.com/charmbracelet/bubbletea"
)

// toggleSubject leaves subject mode directly, or opens the name prompt.
func (m Model) toggleSubject() Model {
	if m.Planner.InSubjectMode() {
		m.Planner.ClearSubject()
		m.Cursor = Cursor{}
		m.refresh()
		m.Status = StatusBar{Text: "date planner"}
		return m
	}
	m.SubjectPrompt = true
	m.subjectInput.SetValue("")
	m.subjectInput.Focus()
	return m
}

func (m Model) handleSubjectKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeSubjectPrompt()
		return m, nil
	case "enter":
		name := m.subjectInput.Value()
		m.closeSubjectPrompt()
		if m.Planner.ToggleSubject(name) {
			m.Cursor = Cursor{}
			m.refresh()
			m.Status = StatusBar{Text: m.Planner.Filter().Label()}
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.subjectInput, cmd = m.subjectInput.Update(msg)
	return m, cmd
}

func (m *Model) closeSubjectPrompt() {
	m.SubjectPrompt = false
	m.subjectInput.SetValue("")
	m.subjectInput.Blur()
}
