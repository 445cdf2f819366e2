package commands

import "fmt"

type Result struct {
	Message string
}

// Handlers binds each command to the board. Bump and Delete act on the
// selected card, so they take no arguments.
type Handlers struct {
	Add     func(AddArgs) (Result, error)
	Goto    func(GotoArgs) (Result, error)
	Subject func(SubjectArgs) (Result, error)
	Bump    func() (Result, error)
	Delete  func() (Result, error)
	Move    func(MoveArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Add(*cmd.Add)
	case TypeGoto:
		if handlers.Goto == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Goto(*cmd.Goto)
	case TypeSubject:
		if handlers.Subject == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Subject(*cmd.Subject)
	case TypeBump:
		if handlers.Bump == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Bump()
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Delete()
	case TypeMove:
		if handlers.Move == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Move(*cmd.Move)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
