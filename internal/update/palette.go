package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/commands"
	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/planner"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.closePalette()
		return m
	}

	selected := func() (model.Card, error) {
		card, ok := m.selectedCard()
		if !ok {
			return model.Card{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no card selected"}
		}
		return card, nil
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			task, ok, err := m.Planner.AddTask(m.ctx, planner.Draft{Title: a.Title, Desc: a.Desc, Date: a.Date})
			if err != nil {
				return commands.Result{}, err
			}
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "add requires a title and a description"}
			}
			return commands.Result{Message: fmt.Sprintf("added %q on %s", task.Title, task.Date)}, nil
		},
		Goto: func(g commands.GotoArgs) (commands.Result, error) {
			if g.Today {
				m.Planner.GoToday()
			} else if err := m.Planner.GoTo(g.Date); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("viewing %s", model.DateLabel(m.Planner.State().ViewDate))}, nil
		},
		Subject: func(s commands.SubjectArgs) (commands.Result, error) {
			m.Cursor = Cursor{}
			if strings.TrimSpace(s.Name) == "" {
				m.Planner.ClearSubject()
				return commands.Result{Message: "date planner"}, nil
			}
			m.Planner.SetSubject(s.Name)
			return commands.Result{Message: m.Planner.Filter().Label()}, nil
		},
		Bump: func() (commands.Result, error) {
			card, err := selected()
			if err != nil {
				return commands.Result{}, err
			}
			task, err := m.Planner.AdvanceTask(m.ctx, card.ID)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("%q moved to %s", task.Title, model.DateLabel(task.Date))}, nil
		},
		Delete: func() (commands.Result, error) {
			card, err := selected()
			if err != nil {
				return commands.Result{}, err
			}
			if err := m.Planner.DeleteTask(m.ctx, card.ID); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("deleted %q", card.Title)}, nil
		},
		Move: func(mv commands.MoveArgs) (commands.Result, error) {
			card, err := selected()
			if err != nil {
				return commands.Result{}, err
			}
			if _, err := m.Planner.MoveTask(m.ctx, card.ID, mv.Status); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("moved %q to %s", card.Title, mv.Status.Label())}, nil
		},
	})
	m.refresh()
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else {
		m.Status = StatusBar{Text: res.Message}
		m.notify("Command", res.Message, "info")
	}

	m.closePalette()
	return m
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}
