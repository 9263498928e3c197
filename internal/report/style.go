package report

import (
	"math"
	"strings"
)

// ---------------------------------------------------------------------------
// Style
// ---------------------------------------------------------------------------

// Color scheme - school navy with a gold accent
var (
	colorPage        = Color{255, 255, 255}
	colorPrimary     = Color{23, 47, 84}    // Banner navy
	colorAccent      = Color{212, 160, 23}  // Gold strip
	colorOnPrimary   = Color{255, 255, 255} // Text on navy
	colorOnPrimaryLo = Color{196, 208, 226} // Secondary text on navy
	colorText        = Color{33, 37, 41}
	colorMuted       = Color{108, 117, 125}
	colorDivider     = Color{206, 212, 218}
	colorCard        = Color{245, 247, 250}
	colorTableHeader = Color{233, 237, 243}
	colorZebra       = Color{250, 251, 252}
	colorDanger      = Color{192, 57, 43}
)

// Geometry in points.
const (
	defaultMargin = 36.0
	// footerReserve is kept free at the bottom of every page for the footer
	// stamped in the final pass.
	footerReserve = 42.0

	bannerHeight   = 64.0
	bannerStrip    = 4.0
	bannerGap      = 10.0
	metaHeight     = 22.0
	metaGap        = 10.0
	cardHeight     = 54.0
	cardRadius     = 8.0
	cardGap        = 16.0
	titleHeight    = 18.0
	headerHeight   = 18.0
	rowHeight      = 16.0
	rowMargin      = 2.0
	sectionGap     = 14.0
	emptyHeight    = 28.0
	cellPadding    = 4.0
	footerBaseline = 26.0
)

// Font sizes in points.
const (
	sizeTitle      = 16.0
	sizeSubtitle   = 9.0
	sizeRange      = 10.0
	sizeMeta       = 9.0
	sizeCardLabel  = 8.0
	sizeCardValue  = 13.0
	sizeSection    = 11.0
	sizeTableHead  = 8.0
	sizeTableCell  = 8.0
	sizeFooter     = 7.5
	continuedLabel = " (continuación)"
)

// PageSize is a page size in points.
type PageSize struct {
	Width, Height float64
}

var pageSizes = map[string]PageSize{
	"letter": {612, 792},
	"legal":  {612, 1008},
	"a4":     {595.28, 841.89},
}

// MarginFits reports whether margin leaves a usable drawing area: a
// finite, non-negative margin under a quarter of the shorter side.
func (s PageSize) MarginFits(margin float64) bool {
	return margin >= 0 && margin < math.Min(s.Width, s.Height)/4
}

// LookupPageSize returns the named page size, defaulting to Letter.
func LookupPageSize(name string) PageSize {
	if size, ok := pageSizes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return size
	}
	return pageSizes["letter"]
}
