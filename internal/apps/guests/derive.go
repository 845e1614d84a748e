package guests

import (
	"sort"
	"strings"
)

// Query holds the view predicates for the guest list. All zero values
// have documented defaults: empty Search matches everything, empty Side
// means "all", empty RSVP means "pending" (the product default view),
// empty sort means name ascending.
type Query struct {
	Search    string
	Side      string
	RSVP      string
	SortField string
	SortDir   string
}

// Counts summarizes the full in-tenant guest collection.
type Counts struct {
	Total  int
	BySide map[string]int
	ByRSVP map[string]int
}

// Derive filters and sorts guests for display. Pure: the input slice is
// never mutated and the output only contains elements of the input.
// Cheap enough to recompute on every keystroke.
func Derive(guests []Guest, q Query) []Guest {
	search := strings.ToLower(q.Search)
	side := strings.ToLower(q.Side)
	rsvp := strings.ToLower(q.RSVP)
	if rsvp == "" {
		rsvp = "pending"
	}

	out := make([]Guest, 0, len(guests))
	for _, g := range guests {
		if search != "" && !matchesSearch(g, search) {
			continue
		}
		if side != "" && side != "all" && strings.ToLower(g.Side) != side {
			continue
		}
		if rsvp != "all" && normalizeRSVP(g.RSVPStatus) != rsvp {
			continue
		}
		out = append(out, g)
	}

	sortGuests(out, q.SortField, q.SortDir)
	return out
}

// Count aggregates totals over the given collection. Side keys group by
// the stored string verbatim; a missing RSVP status groups as "pending".
func Count(guests []Guest) Counts {
	c := Counts{
		Total:  len(guests),
		BySide: make(map[string]int),
		ByRSVP: make(map[string]int),
	}
	for _, g := range guests {
		if g.Side != "" {
			c.BySide[g.Side]++
		}
		c.ByRSVP[normalizeRSVP(g.RSVPStatus)]++
	}
	return c
}

// matchesSearch reports whether any of name, email or phone contains the
// lowercased needle.
func matchesSearch(g Guest, needle string) bool {
	return strings.Contains(strings.ToLower(g.Name), needle) ||
		strings.Contains(strings.ToLower(g.Email), needle) ||
		strings.Contains(strings.ToLower(g.Phone), needle)
}

func normalizeRSVP(status string) string {
	if status == "" {
		return "pending"
	}
	return strings.ToLower(status)
}

// sortGuests orders by the chosen field, case-insensitively. The sort is
// stable and direction flips only the comparator, so equal keys keep
// their source order in both directions.
func sortGuests(guests []Guest, field, dir string) {
	key := func(g Guest) string {
		switch field {
		case "side":
			return strings.ToLower(g.Side)
		case "rsvp":
			return normalizeRSVP(g.RSVPStatus)
		default:
			return strings.ToLower(g.Name)
		}
	}

	desc := dir == "desc"
	sort.SliceStable(guests, func(i, j int) bool {
		a, b := key(guests[i]), key(guests[j])
		if desc {
			return a > b
		}
		return a < b
	})
}
