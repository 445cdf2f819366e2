// Package planner owns the application state of the board (viewed date,
// active subject, dragged card) and applies every user operation as
// load -> mutate -> save against the task store.
package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/sandeepkv93/dayboard/internal/logging"
	"github.com/sandeepkv93/dayboard/internal/model"
)

var ErrTaskNotFound = errors.New("planner: task not found")

// Store persists the whole task collection at once.
type Store interface {
	Load(ctx context.Context) ([]model.Task, error)
	Save(ctx context.Context, tasks []model.Task) error
}

// State is the transient, process-wide view state.
type State struct {
	ViewDate string
	// Subject is the active subject view; empty means the date planner.
	Subject string
	// Dragged is the id of the card currently being dragged.
	Dragged string
}

// Draft is the add-task form input. An empty Date files the task under
// the viewed date.
type Draft struct {
	Title string
	Desc  string
	Date  string
}

type Planner struct {
	store    Store
	now      func() time.Time
	newID    func() string
	logger   *log.Logger
	userName string
	state    State
}

type Option func(*Planner)

func WithClock(now func() time.Time) Option {
	return func(p *Planner) {
		if now != nil {
			p.now = now
		}
	}
}

func WithIDGenerator(fn func() string) Option {
	return func(p *Planner) {
		if fn != nil {
			p.newID = fn
		}
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(p *Planner) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func WithUserName(name string) Option {
	return func(p *Planner) {
		p.userName = strings.TrimSpace(name)
	}
}

func New(store Store, opts ...Option) *Planner {
	p := &Planner{
		store:  store,
		now:    time.Now,
		newID:  newTaskID,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.state.ViewDate = model.Today(p.now())
	return p
}

// newTaskID returns a time-ordered UUIDv7.
func newTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (p *Planner) State() State {
	return p.state
}

func (p *Planner) InSubjectMode() bool {
	return p.state.Subject != ""
}

// Filter returns the active filter: the subject view when one is set,
// otherwise the viewed date.
func (p *Planner) Filter() model.Filter {
	if p.InSubjectMode() {
		return model.BySubject{Name: p.state.Subject}
	}
	return model.ByDate{Date: p.state.ViewDate}
}

func (p *Planner) Tasks(ctx context.Context) ([]model.Task, error) {
	return p.store.Load(ctx)
}

// Board rebuilds the visible board from the full stored collection.
func (p *Planner) Board(ctx context.Context) (model.Board, error) {
	tasks, err := p.store.Load(ctx)
	if err != nil {
		return model.Board{}, err
	}
	return model.BuildBoard(tasks, p.Filter()), nil
}

// AddTask appends a new to-do task. Blank title or description is a
// silent no-op (false, nil). The task inherits the active subject.
func (p *Planner) AddTask(ctx context.Context, d Draft) (model.Task, bool, error) {
	title := strings.TrimSpace(d.Title)
	desc := strings.TrimSpace(d.Desc)
	if title == "" || desc == "" {
		return model.Task{}, false, nil
	}
	date := strings.TrimSpace(d.Date)
	if date == "" {
		date = p.state.ViewDate
	}
	if _, err := model.ParseDate(date); err != nil {
		return model.Task{}, false, err
	}

	var created model.Task
	changed, err := p.mutate(ctx, "add task", func(tasks []model.Task) ([]model.Task, bool, error) {
		created = model.Task{
			ID:     p.uniqueID(tasks),
			Title:  title,
			Desc:   desc,
			Date:   date,
			Status: model.StatusTodo,
		}
		if p.InSubjectMode() {
			created.Subject = model.StringPtr(p.state.Subject)
		}
		if err := created.Validate(); err != nil {
			return nil, false, err
		}
		return append(tasks, created), true, nil
	})
	if err != nil || !changed {
		return model.Task{}, false, err
	}
	return created, true, nil
}

func (p *Planner) uniqueID(tasks []model.Task) string {
	taken := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		taken[t.ID] = true
	}
	for attempt := 0; attempt < 8; attempt++ {
		id := p.newID()
		if id != "" && !taken[id] {
			return id
		}
	}
	return newTaskID()
}

// DeleteTask removes the task with id. No confirmation.
func (p *Planner) DeleteTask(ctx context.Context, id string) error {
	_, err := p.mutate(ctx, "delete task", func(tasks []model.Task) ([]model.Task, bool, error) {
		i := indexOf(tasks, id)
		if i < 0 {
			return nil, false, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
		}
		out := make([]model.Task, 0, len(tasks)-1)
		out = append(out, tasks[:i]...)
		out = append(out, tasks[i+1:]...)
		return out, true, nil
	})
	if err == nil && p.state.Dragged == id {
		p.state.Dragged = ""
	}
	return err
}

// AdvanceTask moves the task one calendar day forward.
func (p *Planner) AdvanceTask(ctx context.Context, id string) (model.Task, error) {
	var updated model.Task
	_, err := p.mutate(ctx, "advance task", func(tasks []model.Task) ([]model.Task, bool, error) {
		i := indexOf(tasks, id)
		if i < 0 {
			return nil, false, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
		}
		next, err := model.ShiftDate(tasks[i].Date, 1)
		if err != nil {
			return nil, false, err
		}
		tasks[i].Date = next
		updated = tasks[i]
		return tasks, true, nil
	})
	return updated, err
}

// MoveTask sets the status of the task with id. Any transition is
// accepted, including into the column the task is already in.
func (p *Planner) MoveTask(ctx context.Context, id string, status model.Status) (model.Task, error) {
	if !status.IsValid() {
		return model.Task{}, fmt.Errorf("%w: %q", model.ErrInvalidStatus, status)
	}
	var updated model.Task
	_, err := p.mutate(ctx, "move task", func(tasks []model.Task) ([]model.Task, bool, error) {
		i := indexOf(tasks, id)
		if i < 0 {
			return nil, false, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
		}
		tasks[i].Status = status
		updated = tasks[i]
		return tasks, true, nil
	})
	return updated, err
}

// BeginDrag records id as the card being dragged.
func (p *Planner) BeginDrag(id string) {
	p.state.Dragged = id
}

// EndDrag clears the drag reference.
func (p *Planner) EndDrag() {
	p.state.Dragged = ""
}

func (p *Planner) Dragged() string {
	return p.state.Dragged
}

// Drop assigns the dragged card to the target column. Without an active
// drag it is a no-op (false, nil). The drag always ends.
func (p *Planner) Drop(ctx context.Context, target model.Status) (bool, error) {
	id := p.state.Dragged
	if id == "" {
		return false, nil
	}
	defer p.EndDrag()
	if _, err := p.MoveTask(ctx, id, target); err != nil {
		return false, err
	}
	return true, nil
}

// ToggleSubject leaves subject mode if active; otherwise enters the named
// subject view. A blank name leaves the mode unchanged and returns false.
func (p *Planner) ToggleSubject(name string) bool {
	if p.InSubjectMode() {
		p.ClearSubject()
		return true
	}
	return p.SetSubject(name)
}

func (p *Planner) SetSubject(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	p.state.Subject = name
	p.logger.Debug("subject view", "subject", name)
	return true
}

func (p *Planner) ClearSubject() {
	p.state.Subject = ""
	p.logger.Debug("date view", "date", p.state.ViewDate)
}

// ShiftView pages the viewed date. In subject mode the date still moves
// but the board does not change because the subject filter ignores it.
func (p *Planner) ShiftView(days int) {
	next, err := model.ShiftDate(p.state.ViewDate, days)
	if err != nil {
		p.logger.Warn("bad view date, resetting to today", "date", p.state.ViewDate, "err", err)
		next = model.Today(p.now())
	}
	p.state.ViewDate = next
}

func (p *Planner) GoTo(date string) error {
	tm, err := model.ParseDate(date)
	if err != nil {
		return err
	}
	p.state.ViewDate = tm.Format(model.DateLayout)
	return nil
}

func (p *Planner) GoToday() {
	p.state.ViewDate = model.Today(p.now())
}

// Header is the viewed date followed by the live wall-clock time.
func (p *Planner) Header(now time.Time) string {
	return fmt.Sprintf("%s • %s", model.DateLabel(p.state.ViewDate), now.Format("15:04:05"))
}

// Greeting is the planner title: the user in date mode, the subject in
// subject mode.
func (p *Planner) Greeting() string {
	if p.InSubjectMode() {
		return "Hi, " + p.state.Subject
	}
	if p.userName == "" {
		return "Hi there"
	}
	return "Hi, " + p.userName
}

func (p *Planner) mutate(ctx context.Context, op string, fn func([]model.Task) ([]model.Task, bool, error)) (bool, error) {
	tasks, err := p.store.Load(ctx)
	if err != nil {
		p.logger.Error("load failed", "op", op, "err", err)
		return false, err
	}
	next, changed, err := fn(tasks)
	if err != nil || !changed {
		return false, err
	}
	if err := p.store.Save(ctx, next); err != nil {
		p.logger.Error("save failed", "op", op, "err", err)
		return false, err
	}
	p.logger.Debug(op, "count", len(next))
	return true, nil
}

func indexOf(tasks []model.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
