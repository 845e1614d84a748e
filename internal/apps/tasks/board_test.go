package tasks

import (
	"testing"
)

func sampleTasks() []Task {
	return []Task{
		{Title: "Book venue", Category: "venue", Status: "done", AssignedTo: "bride"},
		{Title: "Shortlist caterers", Category: "catering", Status: "todo", AssignedTo: "groom"},
		{Title: "Send invites", Category: "invitations", Status: "inprogress", AssignedTo: "bride"},
		{Title: "Taste menu", Category: "catering", Status: "done", AssignedTo: "bride"},
	}
}

func titles(ts []Task) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Title
	}
	return out
}

func equalTitles(got []Task, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i].Title != want[i] {
			return false
		}
	}
	return true
}

func TestDeriveBoardPartition(t *testing.T) {
	board := DeriveBoard(sampleTasks(), BoardQuery{})

	if !equalTitles(board.Todo, []string{"Shortlist caterers"}) {
		t.Errorf("Todo = %v", titles(board.Todo))
	}
	if !equalTitles(board.InProgress, []string{"Send invites"}) {
		t.Errorf("InProgress = %v", titles(board.InProgress))
	}
	if !equalTitles(board.Done, []string{"Book venue", "Taste menu"}) {
		t.Errorf("Done does not preserve source order: %v", titles(board.Done))
	}
	if board.Total() != 4 {
		t.Errorf("Total() = %d, want 4", board.Total())
	}
}

func TestDeriveBoardFilters(t *testing.T) {
	tests := []struct {
		name  string
		query BoardQuery
		want  int
	}{
		{"no filter", BoardQuery{}, 4},
		{"category all", BoardQuery{Category: "all"}, 4},
		{"category exact", BoardQuery{Category: "catering"}, 2},
		{"assignee exact", BoardQuery{AssignedTo: "bride"}, 3},
		{"filters are conjunctive", BoardQuery{Category: "catering", AssignedTo: "bride"}, 1},
		{"no match", BoardQuery{Category: "music"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := DeriveBoard(sampleTasks(), tt.query)
			if board.Total() != tt.want {
				t.Errorf("Total() = %d, want %d", board.Total(), tt.want)
			}
		})
	}
}

func TestDeriveBoardUnknownStatusGoesToTodo(t *testing.T) {
	board := DeriveBoard([]Task{{Title: "Odd one", Status: "blocked"}}, BoardQuery{})
	if !equalTitles(board.Todo, []string{"Odd one"}) {
		t.Errorf("unknown status should land in todo, got %v", titles(board.Todo))
	}
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name  string
		tasks []Task
		want  int
	}{
		{"empty board", nil, 0},
		{"one of four done", []Task{
			{Status: "done"}, {Status: "todo"}, {Status: "todo"}, {Status: "inprogress"},
		}, 25},
		{"all done", []Task{{Status: "done"}, {Status: "done"}}, 100},
		{"rounds to nearest", []Task{
			{Status: "done"}, {Status: "todo"}, {Status: "todo"},
		}, 33},
		{"rounds up", []Task{
			{Status: "done"}, {Status: "done"}, {Status: "todo"},
		}, 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := DeriveBoard(tt.tasks, BoardQuery{})
			if got := board.CompletionRate(); got != tt.want {
				t.Errorf("CompletionRate() = %d, want %d", got, tt.want)
			}
		})
	}
}
