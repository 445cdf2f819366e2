package model

import "testing"

func sampleTasks() []Task {
	return []Task{
		{ID: "1", Title: "a", Desc: "a", Date: "2026-10-15", Status: StatusTodo},
		{ID: "2", Title: "b", Desc: "b", Date: "2026-10-15", Status: StatusDone},
		{ID: "3", Title: "c", Desc: "c", Date: "2026-10-16", Status: StatusTodo},
		{ID: "4", Title: "d", Desc: "d", Date: "2026-10-15", Status: StatusProgress, Subject: StringPtr("math")},
		{ID: "5", Title: "e", Desc: "e", Date: "2026-09-01", Status: StatusDone, Subject: StringPtr("math")},
		{ID: "6", Title: "f", Desc: "f", Date: "2026-10-15", Status: Status("weird")},
		{ID: "7", Title: "g", Desc: "g", Date: "2026-10-15", Status: StatusTodo, Subject: StringPtr("Math")},
	}
}

func cardIDs(c Column) []string {
	out := make([]string, 0, len(c.Cards))
	for _, card := range c.Cards {
		out = append(out, card.ID)
	}
	return out
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestBuildBoardByDate(t *testing.T) {
	board := BuildBoard(sampleTasks(), ByDate{Date: "2026-10-15"})
	if len(board.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(board.Columns))
	}

	want := map[Status][]string{
		StatusTodo:     {"1", "6", "7"},
		StatusProgress: {"4"},
		StatusDone:     {"2"},
	}
	for status, ids := range want {
		col, ok := board.Column(status)
		if !ok {
			t.Fatalf("missing column %q", status)
		}
		if !equalIDs(cardIDs(col), ids) {
			t.Fatalf("column %q = %v, want %v", status, cardIDs(col), ids)
		}
		if col.Count() != len(ids) {
			t.Fatalf("column %q count = %d", status, col.Count())
		}
	}
	if board.Total() != 5 {
		t.Fatalf("expected 5 visible tasks, got %d", board.Total())
	}
}

func TestBuildBoardBySubjectIgnoresDate(t *testing.T) {
	board := BuildBoard(sampleTasks(), BySubject{Name: "math"})
	if board.Total() != 2 {
		t.Fatalf("expected 2 subject tasks, got %d", board.Total())
	}
	if _, ok := board.Find("5"); !ok {
		t.Fatal("expected task from another date in subject view")
	}
	if _, ok := board.Find("7"); ok {
		t.Fatal("subject match must be exact")
	}
	if _, ok := board.Find("1"); ok {
		t.Fatal("untagged task must not appear in subject view")
	}
}

func TestBuildBoardEmptyCollection(t *testing.T) {
	board := BuildBoard(nil, ByDate{Date: "2026-10-15"})
	for _, col := range board.Columns {
		if col.Count() != 0 || col.Cards == nil {
			t.Fatalf("expected empty non-nil column, got %#v", col)
		}
	}
}

func TestFilterLabels(t *testing.T) {
	if got := (ByDate{Date: "2026-10-15"}).Label(); got != "15 Oct 2026" {
		t.Fatalf("date label = %q", got)
	}
	if got := (BySubject{Name: "physics"}).Label(); got != "subject: physics" {
		t.Fatalf("subject label = %q", got)
	}
}
