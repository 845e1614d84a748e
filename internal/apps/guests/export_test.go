package guests

import (
	"strings"
	"testing"
)

func TestExportCSV(t *testing.T) {
	guests := []Guest{
		{Name: "Rahul Kumar", Email: "rahul@example.com", Phone: "555-0101", Side: "Agarwal", RSVPStatus: "confirmed"},
		{Name: "Dan Miller", Side: "Friends"},
	}

	got := ExportCSV(guests)
	want := `"Name","Email","Phone","Side","RSVP Status"
"Rahul Kumar","rahul@example.com","555-0101","Agarwal","confirmed"
"Dan Miller","","","Friends","pending"
`
	if got != want {
		t.Errorf("ExportCSV() =\n%s\nwant\n%s", got, want)
	}
}

func TestExportCSVQuoting(t *testing.T) {
	guests := []Guest{
		{Name: `Priya "Pri" Sharma`, Email: "priya@example.com", Side: "Sharma", RSVPStatus: "pending"},
	}

	got := ExportCSV(guests)
	if !strings.Contains(got, `"Priya ""Pri"" Sharma"`) {
		t.Errorf("embedded quotes not doubled: %s", got)
	}
}

func TestExportCSVHeaderOnly(t *testing.T) {
	got := ExportCSV(nil)
	want := "\"Name\",\"Email\",\"Phone\",\"Side\",\"RSVP Status\"\n"
	if got != want {
		t.Errorf("ExportCSV(nil) = %q, want %q", got, want)
	}
}
