package report

import (
	"strings"
	"unicode"
)

// ---------------------------------------------------------------------------
// Text Fitting
// ---------------------------------------------------------------------------

const (
	// Ellipsis marks truncated text.
	Ellipsis = "..."
	// Placeholder is drawn instead of blank cell values.
	Placeholder = "—"
)

// Fitter truncates text so it fits a column.
type Fitter struct {
	metrics Metrics
}

// NewFitter returns a Fitter measuring with m.
func NewFitter(m Metrics) *Fitter {
	return &Fitter{metrics: m}
}

// Fit returns text, sanitized, if it fits maxWidth at size; otherwise the
// longest prefix that fits together with Ellipsis. Blank text yields
// Placeholder. When not even Ellipsis fits, Ellipsis is returned alone.
//
// Width must be non-decreasing in prefix length; the prefix is found by
// binary search so a call costs O(log n) measurements.
func (f *Fitter) Fit(font Font, text string, size, maxWidth float64) string {
	s := Sanitize(text)
	if strings.TrimSpace(s) == "" {
		s = Placeholder
	}
	if f.metrics.Width(font, s, size) <= maxWidth {
		return s
	}

	ellipsis := f.metrics.Width(font, Ellipsis, size)
	if ellipsis > maxWidth {
		return Ellipsis
	}

	// lo is the longest prefix known to fit; the full string does not.
	runes := []rune(s)
	lo, hi := 0, len(runes)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if f.metrics.Width(font, string(runes[:mid]), size)+ellipsis <= maxWidth {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return strings.TrimRightFunc(string(runes[:lo]), unicode.IsSpace) + Ellipsis
}
