package commands

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/dayboard/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add essay | outline intro", TypeAdd},
		{"goto 2026-10-20", TypeGoto},
		{"/today", TypeGoto},
		{"/subject Physics", TypeSubject},
		{"/subject", TypeSubject},
		{"bump", TypeBump},
		{"/rm", TypeDelete},
		{"/move done", TypeMove},
		{"/mv in-progress", TypeMove},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddFields(t *testing.T) {
	cmd, err := Parse("/add  Lab report | write methods section | 2026-10-21 ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := AddArgs{Title: "Lab report", Desc: "write methods section", Date: "2026-10-21"}
	if *cmd.Add != want {
		t.Fatalf("unexpected add args: %+v", *cmd.Add)
	}

	cmd, err = Parse("/add a | b")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Date != "" {
		t.Fatalf("expected empty date, got %q", cmd.Add.Date)
	}
}

func TestParseInvalidArguments(t *testing.T) {
	for _, in := range []string{
		"/add only a title",
		"/add | desc",
		"/add a | b | 2026-13-01",
		"/goto",
		"/goto tomorrow-ish",
		"/move sideways",
		"/move",
		"/bump now",
	} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid argument, got %v", in, err)
		}
	}
}

func TestParseGotoAndMoveValues(t *testing.T) {
	cmd, err := Parse("/goto today")
	if err != nil || !cmd.Goto.Today {
		t.Fatalf("expected today goto, got %+v err=%v", cmd.Goto, err)
	}
	cmd, err = Parse("/goto 2024-02-29")
	if err != nil || cmd.Goto.Date != "2024-02-29" {
		t.Fatalf("unexpected goto: %+v err=%v", cmd.Goto, err)
	}
	cmd, err = Parse("/move todo")
	if err != nil || cmd.Move.Status != model.StatusTodo {
		t.Fatalf("unexpected move: %+v err=%v", cmd.Move, err)
	}
}

func TestParseUnknownAndEmpty(t *testing.T) {
	_, err := Parse("/snooze overdue")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
	_, err = Parse("  / ")
	if !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
		t.Fatalf("expected empty input error, got %v", err)
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/subject Chemistry")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Subject: func(a SubjectArgs) (Result, error) {
			called = true
			if a.Name != "Chemistry" {
				t.Fatalf("unexpected subject: %q", a.Name)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}

	cmd, _ = Parse("/bump")
	bumped := false
	if _, err := Execute(cmd, Handlers{Bump: func() (Result, error) { bumped = true; return Result{}, nil }}); err != nil || !bumped {
		t.Fatalf("bump dispatch failed: bumped=%v err=%v", bumped, err)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("/delete")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
