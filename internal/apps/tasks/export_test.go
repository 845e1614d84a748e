package tasks

import (
	"strings"
	"testing"
	"time"
)

func TestExportCSVTasks(t *testing.T) {
	due := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	tasks := []Task{
		{Title: "Book venue", Description: "Deposit due", Category: "venue", Status: "done", AssignedTo: "bride", DueDate: &due},
		{Title: "Shortlist caterers", Status: "todo"},
	}

	got := ExportCSV(tasks)
	want := `"Title","Description","Category","Status","Assigned To","Due Date"
"Book venue","Deposit due","venue","done","bride","2026-03-14"
"Shortlist caterers","","","todo","",""
`
	if got != want {
		t.Errorf("ExportCSV() =\n%s\nwant\n%s", got, want)
	}
}

func TestExportCSVTaskQuoting(t *testing.T) {
	tasks := []Task{
		{Title: `Order "mandap" flowers`, Status: "todo"},
	}
	got := ExportCSV(tasks)
	if !strings.Contains(got, `"Order ""mandap"" flowers"`) {
		t.Errorf("embedded quotes not doubled: %s", got)
	}
}
