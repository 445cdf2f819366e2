package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sandeepkv93/dayboard/internal/model"
)

const DefaultColumnWidth = 34

type BoardData struct {
	Board      model.Board
	SelectedID string
	// Dragged is the card currently held; DropTarget is the column it
	// would land in. DropTarget is ignored when nothing is dragged.
	Dragged     string
	DropTarget  model.Status
	ColumnWidth int
}

var (
	columnStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	dropTargetStyle = columnStyle.BorderForeground(lipgloss.Color("11"))
	columnTitle     = lipgloss.NewStyle().Bold(true).Underline(true)
	cardTitle       = lipgloss.NewStyle().Bold(true)
	selectedCard    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	draggedCard     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Italic(true)
	dateStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderBoard draws the three status columns side by side with their
// visible counts.
func RenderBoard(data BoardData) string {
	width := data.ColumnWidth
	if width <= 0 {
		width = DefaultColumnWidth
	}
	cols := make([]string, 0, len(data.Board.Columns))
	for _, col := range data.Board.Columns {
		style := columnStyle
		title := ColumnHeading(col)
		if data.Dragged != "" && col.Status == data.DropTarget {
			style = dropTargetStyle
			title += " ⇣"
		}
		body := []string{columnTitle.Render(title)}
		if col.Count() == 0 {
			body = append(body, dateStyle.Render("(empty)"))
		}
		for _, card := range col.Cards {
			body = append(body, renderCard(card, data.SelectedID, data.Dragged))
		}
		cols = append(cols, style.Width(width).Render(strings.Join(body, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func ColumnHeading(col model.Column) string {
	return fmt.Sprintf("%s (%d)", col.Title, col.Count())
}

func renderCard(card model.Card, selectedID, dragged string) string {
	cursor := " "
	if card.ID == selectedID {
		cursor = ">"
	}
	lines := []string{
		cursor + " " + cardTitle.Render(card.Title),
		"  " + card.Desc,
		"  " + dateStyle.Render(card.DateLabel),
	}
	if card.Subject != "" {
		lines = append(lines, "  #"+card.Subject)
	}
	out := strings.Join(lines, "\n")
	switch {
	case card.ID == dragged:
		out = draggedCard.Render(out + "\n  (dragging)")
	case card.ID == selectedID:
		out = selectedCard.Render(out)
	}
	return out + "\n"
}
