package tasks

import (
	"math"
	"strings"
)

// BoardQuery filters the kanban view. Empty or "all" values match every
// task; the two predicates are conjunctive.
type BoardQuery struct {
	Category   string
	AssignedTo string
}

// Board is the derived kanban view: the filtered tasks partitioned into
// the three fixed status buckets, source order preserved within each.
type Board struct {
	Todo       []Task
	InProgress []Task
	Done       []Task
}

func (b Board) Total() int {
	return len(b.Todo) + len(b.InProgress) + len(b.Done)
}

// CompletionRate is the percentage of filtered tasks that are done,
// rounded to the nearest integer. 0 for an empty board.
func (b Board) CompletionRate() int {
	total := b.Total()
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(len(b.Done)) / float64(total) * 100))
}

// DeriveBoard filters and partitions tasks. Pure: the input is never
// mutated and every output element comes from the input. A status that
// is neither "inprogress" nor "done" lands in the todo bucket.
func DeriveBoard(tasks []Task, q BoardQuery) Board {
	var board Board
	for _, t := range tasks {
		if !matchesAll(q.Category, t.Category) {
			continue
		}
		if !matchesAll(q.AssignedTo, t.AssignedTo) {
			continue
		}
		switch strings.ToLower(t.Status) {
		case "inprogress":
			board.InProgress = append(board.InProgress, t)
		case "done":
			board.Done = append(board.Done, t)
		default:
			board.Todo = append(board.Todo, t)
		}
	}
	return board
}

func matchesAll(filter, value string) bool {
	return filter == "" || filter == "all" || filter == value
}
