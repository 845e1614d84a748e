package tasks

import "strings"

var csvHeader = []string{"Title", "Description", "Category", "Status", "Assigned To", "Due Date"}

// ExportCSV renders tasks in the fixed export format: every field is
// double-quote-wrapped with embedded quotes doubled and missing
// optionals render empty.
func ExportCSV(tasks []Task) string {
	var b strings.Builder
	writeRow(&b, csvHeader)
	for _, t := range tasks {
		dueDate := ""
		if t.DueDate != nil {
			dueDate = t.DueDate.Format(dueDateLayout)
		}
		writeRow(&b, []string{t.Title, t.Description, t.Category, t.Status, t.AssignedTo, dueDate})
	}
	return b.String()
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
