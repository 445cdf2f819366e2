package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/views"
)

func (m Model) handleBoardKey(msg tea.KeyMsg) Model {
	dragging := m.Planner.Dragged() != ""
	switch msg.String() {
	case "h", "left":
		if dragging {
			m.DropTarget = clamp(m.DropTarget-1, 0, len(m.Board.Columns)-1)
		} else {
			m.moveColumn(-1)
		}
	case "l", "right":
		if dragging {
			m.DropTarget = clamp(m.DropTarget+1, 0, len(m.Board.Columns)-1)
		} else {
			m.moveColumn(1)
		}
	case "j", "down":
		if !dragging {
			m.Cursor.Row++
			m.clampCursor()
		}
	case "k", "up":
		if !dragging {
			m.Cursor.Row--
			m.clampCursor()
		}
	case m.Keys.Grab:
		card, ok := m.selectedCard()
		if !ok {
			m.Status = StatusBar{Text: "no card selected"}
			return m
		}
		m.Planner.BeginDrag(card.ID)
		m.DropTarget = m.Cursor.Col
		m.Status = StatusBar{Text: fmt.Sprintf("dragging %q: h/l to aim, enter to drop, esc to cancel", card.Title)}
	case m.Keys.Drop:
		return m.drop()
	case m.Keys.Cancel:
		if dragging {
			m.Planner.EndDrag()
			m.Status = StatusBar{Text: "drag cancelled"}
		}
	case m.Keys.Advance:
		return m.advanceSelected()
	case m.Keys.Delete:
		return m.deleteSelected()
	case m.Keys.Detail:
		m.DetailVisible = !m.DetailVisible
	}
	return m
}

func (m Model) drop() Model {
	id := m.Planner.Dragged()
	target := m.targetStatus()
	moved, err := m.Planner.Drop(m.ctx, target)
	if err != nil {
		m.setError(err)
		m.refresh()
		return m
	}
	if !moved {
		m.Status = StatusBar{Text: "nothing to drop"}
		return m
	}
	m.refresh()
	m.focusCard(id)
	m.Status = StatusBar{Text: fmt.Sprintf("moved to %s", target.Label())}
	return m
}

func (m Model) advanceSelected() Model {
	card, ok := m.selectedCard()
	if !ok {
		m.Status = StatusBar{Text: "no card selected"}
		return m
	}
	task, err := m.Planner.AdvanceTask(m.ctx, card.ID)
	if err != nil {
		m.setError(err)
		return m
	}
	m.refresh()
	m.Status = StatusBar{Text: fmt.Sprintf("%q moved to %s", task.Title, model.DateLabel(task.Date))}
	return m
}

func (m Model) deleteSelected() Model {
	card, ok := m.selectedCard()
	if !ok {
		m.Status = StatusBar{Text: "no card selected"}
		return m
	}
	if err := m.Planner.DeleteTask(m.ctx, card.ID); err != nil {
		m.setError(err)
		return m
	}
	m.refresh()
	m.Status = StatusBar{Text: fmt.Sprintf("deleted %q", card.Title)}
	return m
}

func (m Model) shiftView(days int) Model {
	m.Planner.ShiftView(days)
	m.refresh()
	return m
}

func (m Model) targetStatus() model.Status {
	if m.DropTarget < 0 || m.DropTarget >= len(m.Board.Columns) {
		return model.StatusTodo
	}
	return m.Board.Columns[m.DropTarget].Status
}

func (m Model) selectedCard() (model.Card, bool) {
	if m.Cursor.Col < 0 || m.Cursor.Col >= len(m.Board.Columns) {
		return model.Card{}, false
	}
	cards := m.Board.Columns[m.Cursor.Col].Cards
	if m.Cursor.Row < 0 || m.Cursor.Row >= len(cards) {
		return model.Card{}, false
	}
	return cards[m.Cursor.Row], true
}

func (m *Model) moveColumn(delta int) {
	m.Cursor.Col = clamp(m.Cursor.Col+delta, 0, len(m.Board.Columns)-1)
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if len(m.Board.Columns) == 0 {
		m.Cursor = Cursor{}
		return
	}
	m.Cursor.Col = clamp(m.Cursor.Col, 0, len(m.Board.Columns)-1)
	m.Cursor.Row = clamp(m.Cursor.Row, 0, m.Board.Columns[m.Cursor.Col].Count()-1)
}

// focusCard moves the cursor onto the card with id if it is visible.
func (m *Model) focusCard(id string) {
	for ci, col := range m.Board.Columns {
		for ri, card := range col.Cards {
			if card.ID == id {
				m.Cursor = Cursor{Col: ci, Row: ri}
				return
			}
		}
	}
}

func (m Model) renderBoard() string {
	selected := ""
	if card, ok := m.selectedCard(); ok {
		selected = card.ID
	}
	return views.RenderBoard(views.BoardData{
		Board:       m.Board,
		SelectedID:  selected,
		Dragged:     m.Planner.Dragged(),
		DropTarget:  m.targetStatus(),
		ColumnWidth: m.columnWidth,
	})
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
