package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"

	"github.com/sandeepkv93/dayboard/internal/clock"
	"github.com/sandeepkv93/dayboard/internal/logging"
	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/planner"
	"github.com/sandeepkv93/dayboard/internal/views"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	AddForm string
	Subject string
	PrevDay string
	NextDay string
	Today   string
	Grab    string
	Drop    string
	Cancel  string
	Advance string
	Delete  string
	Detail  string
	Palette string
	Help    string
	Quit    string
}

// Cursor addresses a card by column index and row within the column.
type Cursor struct {
	Col int
	Row int
}

const (
	fieldTitle = iota
	fieldDesc
	fieldDate
	fieldCount
)

type FormState struct {
	Active bool
	Focus  int
	Err    string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

// RuntimeConfig wires the model to its collaborators. Zero values fall
// back to sensible defaults.
type RuntimeConfig struct {
	Context      context.Context
	Ticker       *clock.Ticker
	TickInterval time.Duration
	ColumnWidth  int
	Now          func() time.Time
	Logger       *log.Logger
}

type Model struct {
	Planner       *planner.Planner
	Board         model.Board
	Cursor        Cursor
	DropTarget    int
	Form          FormState
	SubjectPrompt bool
	Palette       CommandPaletteState
	HelpVisible   bool
	DetailVisible bool
	Notifications []Notification
	Status        StatusBar
	Keys          GlobalKeyMap
	Quitting      bool
	LastError     error
	Clock         time.Time

	ctx          context.Context
	ticker       *clock.Ticker
	tickInterval time.Duration
	columnWidth  int
	now          func() time.Time
	logger       *log.Logger

	titleInput   textinput.Model
	descArea     textarea.Model
	dateInput    textinput.Model
	subjectInput textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// ClockTickMsg refreshes the header clock.
type ClockTickMsg struct {
	At time.Time
}

// ReloadMsg asks the model to re-read the store after an outside write.
type ReloadMsg struct{}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Context:      context.Background(),
		TickInterval: time.Second,
		ColumnWidth:  views.DefaultColumnWidth,
		Now:          time.Now,
	}
}

func NewModel(p *planner.Planner, cfg RuntimeConfig) Model {
	def := DefaultRuntimeConfig()
	if cfg.Context == nil {
		cfg.Context = def.Context
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = def.TickInterval
	}
	if cfg.ColumnWidth <= 0 {
		cfg.ColumnWidth = def.ColumnWidth
	}
	if cfg.Now == nil {
		cfg.Now = def.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}

	m := Model{
		Planner: p,
		Keys: GlobalKeyMap{
			AddForm: "n",
			Subject: "s",
			PrevDay: "ctrl+left",
			NextDay: "ctrl+right",
			Today:   "t",
			Grab:    "g",
			Drop:    "enter",
			Cancel:  "esc",
			Advance: ">",
			Delete:  "x",
			Detail:  "v",
			Palette: "/",
			Help:    "?",
			Quit:    "q",
		},
		Clock:        cfg.Now(),
		ctx:          cfg.Context,
		ticker:       cfg.Ticker,
		tickInterval: cfg.TickInterval,
		columnWidth:  cfg.ColumnWidth,
		now:          cfg.Now,
		logger:       cfg.Logger,
	}
	m.initBubbleComponents()
	m.refresh()
	return m
}

func (m *Model) initBubbleComponents() {
	m.titleInput = textinput.New()
	m.titleInput.Prompt = "> "
	m.titleInput.Placeholder = "Title"
	m.titleInput.CharLimit = 120
	m.titleInput.Width = 48

	m.descArea = textarea.New()
	m.descArea.SetWidth(54)
	m.descArea.SetHeight(4)
	m.descArea.ShowLineNumbers = false
	m.descArea.Placeholder = "Description (markdown)"

	m.dateInput = textinput.New()
	m.dateInput.Prompt = "> "
	m.dateInput.CharLimit = len(model.DateLayout)
	m.dateInput.Width = 12

	m.subjectInput = textinput.New()
	m.subjectInput.Prompt = "subject> "
	m.subjectInput.CharLimit = 64
	m.subjectInput.Width = 32

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
}

// refresh rebuilds the board from the store and keeps the cursor in range.
func (m *Model) refresh() {
	if m.Planner == nil {
		return
	}
	board, err := m.Planner.Board(m.ctx)
	if err != nil {
		m.setError(err)
		return
	}
	m.Board = board
	m.clampCursor()
}

func (m *Model) setError(err error) {
	m.LastError = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
	m.logger.Error("board operation failed", "err", err)
	m.notify("Error", err.Error(), "error")
}

func (m *Model) notify(title, body, level string) {
	if body == "" {
		return
	}
	m.Notifications = append(m.Notifications, Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    m.now(),
	})
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
}

func levelFromError(isErr bool) string {
	if isErr {
		return "error"
	}
	return "info"
}
