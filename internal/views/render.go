package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Greeting     string
	Header       string
	Mode         string
	Board        string
	Overlay      string
	Detail       string
	StatusLine   string
	Footer       string
	Notification string
}

var (
	greetingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	modeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func RenderApp(data AppData) string {
	top := greetingStyle.Render(data.Greeting) + "  " + headerStyle.Render(data.Header)
	if data.Mode != "" {
		top += "  " + modeStyle.Render("["+data.Mode+"]")
	}

	lines := []string{top, data.Board}
	if data.Overlay != "" {
		lines = append(lines, panelStyle.Render(data.Overlay))
	}
	if data.Detail != "" {
		lines = append(lines, panelStyle.Render(data.Detail))
	}

	status := statusStyle.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = errorStyle.Render(data.StatusLine)
	}
	lines = append(lines, status)

	if data.Notification != "" {
		lines = append(lines, panelStyle.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
