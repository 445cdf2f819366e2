package commands

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/dayboard/internal/model"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeGoto    Type = "goto"
	TypeSubject Type = "subject"
	TypeBump    Type = "bump"
	TypeDelete  Type = "delete"
	TypeMove    Type = "move"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AddArgs mirrors the add form. Date is optional.
type AddArgs struct {
	Title string
	Desc  string
	Date  string
}

// GotoArgs holds either a calendar date or Today.
type GotoArgs struct {
	Date  string
	Today bool
}

// SubjectArgs with an empty Name leaves subject mode.
type SubjectArgs struct {
	Name string
}

type MoveArgs struct {
	Status model.Status
}

type Command struct {
	Type    Type
	Raw     string
	Add     *AddArgs
	Goto    *GotoArgs
	Subject *SubjectArgs
	Move    *MoveArgs
}

var aliases = map[string]Type{
	"a":     TypeAdd,
	"g":     TypeGoto,
	"go":    TypeGoto,
	"s":     TypeSubject,
	"rm":    TypeDelete,
	"del":   TypeDelete,
	"next":  TypeBump,
	"mv":    TypeMove,
	"today": TypeGoto,
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	head, rest, _ := strings.Cut(raw, " ")
	head = strings.ToLower(head)
	rest = strings.TrimSpace(rest)

	typ := Type(head)
	if alias, ok := aliases[head]; ok {
		typ = alias
		if head == "today" {
			rest = "today"
		}
	}

	switch typ {
	case TypeAdd:
		return parseAdd(input, rest)
	case TypeGoto:
		return parseGoto(input, rest)
	case TypeSubject:
		return Command{Type: TypeSubject, Raw: input, Subject: &SubjectArgs{Name: rest}}, nil
	case TypeBump, TypeDelete:
		if rest != "" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes no arguments", typ)}
		}
		return Command{Type: typ, Raw: input}, nil
	case TypeMove:
		return parseMove(input, rest)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd splits "title | desc [| date]".
func parseAdd(raw, rest string) (Command, error) {
	parts := strings.Split(rest, "|")
	if len(parts) < 2 || len(parts) > 3 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "usage: add title | desc [| YYYY-MM-DD]"}
	}
	args := AddArgs{
		Title: strings.TrimSpace(parts[0]),
		Desc:  strings.TrimSpace(parts[1]),
	}
	if args.Title == "" || args.Desc == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title and a description"}
	}
	if len(parts) == 3 {
		args.Date = strings.TrimSpace(parts[2])
		if args.Date != "" {
			if _, err := model.ParseDate(args.Date); err != nil {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
			}
		}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &args}, nil
}

func parseGoto(raw, rest string) (Command, error) {
	switch strings.ToLower(rest) {
	case "":
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goto requires a date or \"today\""}
	case "today":
		return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{Today: true}}, nil
	}
	tm, err := model.ParseDate(rest)
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{Date: tm.Format(model.DateLayout)}}, nil
}

func parseMove(raw, rest string) (Command, error) {
	if rest == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "move requires a status (to-do, progress, done)"}
	}
	status, err := model.ParseStatus(rest)
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	return Command{Type: TypeMove, Raw: raw, Move: &MoveArgs{Status: status}}, nil
}
