package views

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/dayboard/internal/model"
)

type FormData struct {
	Active    bool
	TitleView string
	DescView  string
	DateView  string
	Focus     int
	Subject   string
	ErrorText string
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

func RenderForm(data FormData) string {
	if !data.Active {
		return ""
	}
	var b strings.Builder
	b.WriteString("new task:\n")
	b.WriteString("keys: [tab] field [ctrl+s] add [esc] close\n")
	fields := []struct {
		label string
		view  string
	}{
		{"title", data.TitleView},
		{"desc", data.DescView},
		{"date", data.DateView},
	}
	for i, f := range fields {
		cursor := " "
		if data.Focus == i {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s:\n%s\n", cursor, f.label, f.view))
	}
	if data.Subject != "" {
		b.WriteString(fmt.Sprintf("subject: %s\n", data.Subject))
	}
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderSubjectPrompt(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("subject planner:\nname: %s\n[enter] open [esc] cancel", input)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

// RenderDetail shows the selected card with its description rendered as
// markdown.
func RenderDetail(card *model.Card) string {
	if card == nil {
		return ""
	}
	md := fmt.Sprintf("### %s\n\n%s\n\n`%s` · %s", card.Title, card.Desc, card.Date, card.Status.Label())
	if card.Subject != "" {
		md += " · #" + card.Subject
	}
	return RenderMarkdown(md)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n%s",
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
