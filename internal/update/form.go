package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/planner"
	"github.com/sandeepkv93/dayboard/internal/views"
)

func (m *Model) openForm() {
	m.Form = FormState{Active: true}
	m.dateInput.Placeholder = m.Planner.State().ViewDate
	m.focusFormField(fieldTitle)
	m.Status = StatusBar{Text: "new task"}
}

func (m *Model) closeForm() {
	m.Form = FormState{}
	m.titleInput.Blur()
	m.descArea.Blur()
	m.dateInput.Blur()
}

func (m *Model) resetForm() {
	m.titleInput.SetValue("")
	m.descArea.Reset()
	m.dateInput.SetValue("")
}

func (m *Model) focusFormField(i int) {
	m.Form.Focus = (i + fieldCount) % fieldCount
	m.titleInput.Blur()
	m.descArea.Blur()
	m.dateInput.Blur()
	switch m.Form.Focus {
	case fieldTitle:
		m.titleInput.Focus()
	case fieldDesc:
		m.descArea.Focus()
	case fieldDate:
		m.dateInput.Focus()
	}
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		m.Status = StatusBar{Text: "form closed"}
		return m, nil
	case "ctrl+s":
		return m.submitForm(), nil
	case "tab":
		m.focusFormField(m.Form.Focus + 1)
		return m, nil
	case "shift+tab":
		m.focusFormField(m.Form.Focus - 1)
		return m, nil
	case "enter":
		if m.Form.Focus != fieldDesc {
			if m.Form.Focus == fieldDate {
				return m.submitForm(), nil
			}
			m.focusFormField(m.Form.Focus + 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.Form.Focus {
	case fieldTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case fieldDesc:
		m.descArea, cmd = m.descArea.Update(msg)
	case fieldDate:
		m.dateInput, cmd = m.dateInput.Update(msg)
	}
	return m, cmd
}

// submitForm adds the drafted task. Blank title or description keeps the
// form open without a message.
func (m Model) submitForm() Model {
	task, ok, err := m.Planner.AddTask(m.ctx, planner.Draft{
		Title: m.titleInput.Value(),
		Desc:  m.descArea.Value(),
		Date:  m.dateInput.Value(),
	})
	if err != nil {
		m.Form.Err = err.Error()
		m.LastError = err
		return m
	}
	if !ok {
		return m
	}
	m.resetForm()
	m.closeForm()
	m.refresh()
	m.focusCard(task.ID)
	m.Status = StatusBar{Text: fmt.Sprintf("added %q", task.Title)}
	return m
}

func (m Model) renderForm() string {
	return views.RenderForm(views.FormData{
		Active:    m.Form.Active,
		TitleView: m.titleInput.View(),
		DescView:  m.descArea.View(),
		DateView:  m.dateInput.View(),
		Focus:     m.Form.Focus,
		Subject:   m.Planner.State().Subject,
		ErrorText: m.Form.Err,
	})
}
