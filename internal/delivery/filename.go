package delivery

import (
	"strings"

	"cortecaja/internal/report"
)

const fileNamePrefix = "corte-caja"

// FileName names the PDF of a closing:
// corte-caja_<inicio>_<fin>[_plantel-<id>].pdf. Missing or unparseable
// dates become "sin-fecha"; the branch part is left out for all branches.
func FileName(in report.Input, filter *report.Filter) string {
	start, end, branchID := report.Selection(in, filter)

	parts := []string{fileNamePrefix, datePart(start), datePart(end)}
	if !report.IsAllBranches(branchID) {
		parts = append(parts, "plantel-"+safePart(string(branchID)))
	}
	return strings.Join(parts, "_") + ".pdf"
}

func datePart(s string) string {
	if d := report.ISODate(s); d != "" {
		return d
	}
	return "sin-fecha"
}

// safePart keeps letters, digits and '-' so the name survives any file
// system and header quoting.
func safePart(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}
