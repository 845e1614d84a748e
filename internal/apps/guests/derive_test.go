package guests

import (
	"testing"
)

func sampleGuests() []Guest {
	return []Guest{
		{Name: "Rahul Kumar", Email: "rahul@example.com", Phone: "555-0101", Side: "Agarwal", RSVPStatus: "confirmed"},
		{Name: "Priya Sharma", Email: "priya@example.com", Phone: "555-0102", Side: "Sharma", RSVPStatus: "pending"},
		{Name: "Dan Miller", Email: "dan@example.com", Phone: "555-0103", Side: "Friends", RSVPStatus: ""},
		{Name: "Anita Rao", Email: "anita@example.com", Phone: "555-0104", Side: "Agarwal", RSVPStatus: "declined"},
		{Name: "Maya Patel", Email: "maya@example.com", Phone: "555-0105", Side: "Friends", RSVPStatus: "Confirmed"},
	}
}

func names(gs []Guest) []string {
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = g.Name
	}
	return out
}

func equalNames(got []Guest, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i].Name != want[i] {
			return false
		}
	}
	return true
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{
			name:  "default view shows pending only",
			query: Query{},
			want:  []string{"Dan Miller", "Priya Sharma"},
		},
		{
			name:  "rsvp all disables the default filter",
			query: Query{RSVP: "all"},
			want:  []string{"Anita Rao", "Dan Miller", "Maya Patel", "Priya Sharma", "Rahul Kumar"},
		},
		{
			name:  "search is case insensitive over name",
			query: Query{Search: "RAHUL", RSVP: "all"},
			want:  []string{"Rahul Kumar"},
		},
		{
			name:  "search matches email and phone too",
			query: Query{Search: "555-0104", RSVP: "all"},
			want:  []string{"Anita Rao"},
		},
		{
			name:  "side filter is case insensitive",
			query: Query{Side: "agarwal", RSVP: "all"},
			want:  []string{"Anita Rao", "Rahul Kumar"},
		},
		{
			name:  "side all matches everyone",
			query: Query{Side: "all", RSVP: "all"},
			want:  []string{"Anita Rao", "Dan Miller", "Maya Patel", "Priya Sharma", "Rahul Kumar"},
		},
		{
			name:  "rsvp filter normalizes stored casing",
			query: Query{RSVP: "confirmed"},
			want:  []string{"Maya Patel", "Rahul Kumar"},
		},
		{
			name:  "missing rsvp status groups as pending",
			query: Query{RSVP: "pending"},
			want:  []string{"Dan Miller", "Priya Sharma"},
		},
		{
			name:  "filters compose",
			query: Query{Side: "Friends", RSVP: "confirmed"},
			want:  []string{"Maya Patel"},
		},
		{
			name:  "sort by side descending",
			query: Query{RSVP: "all", SortField: "side", SortDir: "desc"},
			want:  []string{"Priya Sharma", "Dan Miller", "Maya Patel", "Rahul Kumar", "Anita Rao"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := sampleGuests()
			got := Derive(input, tt.query)
			if !equalNames(got, tt.want) {
				t.Errorf("Derive() = %v, want %v", names(got), tt.want)
			}
		})
	}
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	input := sampleGuests()
	Derive(input, Query{RSVP: "all", SortField: "name", SortDir: "desc"})
	want := sampleGuests()
	for i := range want {
		if input[i].Name != want[i].Name {
			t.Fatalf("input mutated at %d: got %q, want %q", i, input[i].Name, want[i].Name)
		}
	}
}

func TestDeriveStableOnEqualKeys(t *testing.T) {
	input := []Guest{
		{Name: "B Guest", Side: "Friends"},
		{Name: "A Guest", Side: "Friends"},
	}
	got := Derive(input, Query{RSVP: "all", SortField: "side", SortDir: "asc"})
	if !equalNames(got, []string{"B Guest", "A Guest"}) {
		t.Errorf("equal side keys reordered: got %v", names(got))
	}
	got = Derive(input, Query{RSVP: "all", SortField: "side", SortDir: "desc"})
	if !equalNames(got, []string{"B Guest", "A Guest"}) {
		t.Errorf("descending sort broke stability: got %v", names(got))
	}
}

func TestCount(t *testing.T) {
	c := Count(sampleGuests())

	if c.Total != 5 {
		t.Errorf("Total = %d, want 5", c.Total)
	}
	if got := c.BySide["Agarwal"]; got != 2 {
		t.Errorf("BySide[Agarwal] = %d, want 2", got)
	}
	if got := c.BySide["Friends"]; got != 2 {
		t.Errorf("BySide[Friends] = %d, want 2", got)
	}
	if got := c.ByRSVP["confirmed"]; got != 2 {
		t.Errorf("ByRSVP[confirmed] = %d, want 2", got)
	}
	if got := c.ByRSVP["pending"]; got != 2 {
		t.Errorf("missing status should count as pending: got %d, want 2", got)
	}
	if got := c.ByRSVP["declined"]; got != 1 {
		t.Errorf("ByRSVP[declined] = %d, want 1", got)
	}
}

func TestCountEmpty(t *testing.T) {
	c := Count(nil)
	if c.Total != 0 || len(c.BySide) != 0 || len(c.ByRSVP) != 0 {
		t.Errorf("Count(nil) = %+v, want empty", c)
	}
}
