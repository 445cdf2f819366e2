package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidStatus = errors.New("model: invalid task status")
	ErrEmptyField    = errors.New("model: required field is empty")
)

type Status string

const (
	StatusTodo     Status = "to-do"
	StatusProgress Status = "progress"
	StatusDone     Status = "done"
)

// Statuses lists the board columns in display order.
var Statuses = []Status{StatusTodo, StatusProgress, StatusDone}

func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusProgress, StatusDone:
		return true
	default:
		return false
	}
}

// Column returns the column a task with this status is shown in.
// Unrecognized values fall back to the to-do column.
func (s Status) Column() Status {
	if s.IsValid() {
		return s
	}
	return StatusTodo
}

func (s Status) Label() string {
	switch s.Column() {
	case StatusProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	default:
		return "To Do"
	}
}

// ParseStatus accepts the stored identifiers plus a few spoken aliases.
func ParseStatus(raw string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "to-do", "todo":
		return StatusTodo, nil
	case "progress", "in-progress", "doing":
		return StatusProgress, nil
	case "done":
		return StatusDone, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
}

// Task is one planner entry. The JSON layout is the persisted blob format.
type Task struct {
	ID      string  `json:"id" yaml:"id"`
	Title   string  `json:"title" yaml:"title"`
	Desc    string  `json:"desc" yaml:"desc"`
	Date    string  `json:"date" yaml:"date"`
	Status  Status  `json:"status" yaml:"status"`
	Subject *string `json:"subject" yaml:"subject"`
}

// HasSubject reports whether the task is scoped to a named subject view.
func (t Task) HasSubject() bool {
	return t.Subject != nil
}

func (t Task) SubjectName() string {
	if t.Subject == nil {
		return ""
	}
	return *t.Subject
}

// Validate checks the creation-time invariants. Stored tasks are not
// re-validated after creation.
func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: title", ErrEmptyField)
	}
	if strings.TrimSpace(t.Desc) == "" {
		return fmt.Errorf("%w: desc", ErrEmptyField)
	}
	if _, err := ParseDate(t.Date); err != nil {
		return err
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	return nil
}

// StringPtr returns a pointer to a copy of s.
func StringPtr(s string) *string {
	return &s
}
