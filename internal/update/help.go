package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/dayboard/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.allBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) allBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "h/l", Action: "select column (aim while dragging)"},
		{Key: "j/k", Action: "select card"},
		{Key: m.Keys.Grab, Action: "grab selected card"},
		{Key: m.Keys.Drop, Action: "drop grabbed card"},
		{Key: m.Keys.Cancel, Action: "cancel drag"},
		{Key: m.Keys.Advance, Action: "move card to next day"},
		{Key: m.Keys.Delete, Action: "delete card"},
		{Key: m.Keys.Detail, Action: "toggle detail pane"},
		{Key: m.Keys.AddForm, Action: "new task"},
		{Key: m.Keys.Subject, Action: "toggle subject planner"},
		{Key: m.Keys.PrevDay, Action: "previous day"},
		{Key: m.Keys.NextDay, Action: "next day"},
		{Key: m.Keys.Today, Action: "jump to today"},
		{Key: m.Keys.Palette, Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) helpBindings() []key.Binding {
	all := m.allBindings()
	out := make([]key.Binding, 0, len(all))
	for _, kb := range all {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
