package guests

import "strings"

var csvHeader = []string{"Name", "Email", "Phone", "Side", "RSVP Status"}

// ExportCSV renders guests in the fixed export format: every field is
// double-quote-wrapped with embedded quotes doubled, missing optionals
// render empty, and a missing RSVP status renders as "pending".
func ExportCSV(guests []Guest) string {
	var b strings.Builder
	writeRow(&b, csvHeader)
	for _, g := range guests {
		writeRow(&b, []string{g.Name, g.Email, g.Phone, g.Side, normalizeRSVP(g.RSVPStatus)})
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
