package report

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

// ---------------------------------------------------------------------------
// Text Metrics
// ---------------------------------------------------------------------------

// fontFamily is the core font used for every text run. Core fonts need no
// embedding and encode text as cp1252.
const fontFamily = "Helvetica"

// Font selects a face of the report font family.
type Font int

const (
	FontRegular Font = iota
	FontBold
)

func (f Font) style() string {
	if f == FontBold {
		return "B"
	}
	return ""
}

// Metrics measures rendered text width in points.
type Metrics interface {
	Width(font Font, text string, size float64) float64
}

// FontMetrics measures text with fpdf's core font width tables.
// It is not safe for concurrent use; each render owns one.
type FontMetrics struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
}

// NewFontMetrics loads the core font metrics used by Encode.
func NewFontMetrics() (*FontMetrics, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.SetFont(fontFamily, "B", 10)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to load font metrics: %w", err)
	}
	return &FontMetrics{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}, nil
}

// Width returns the width of text at the given size.
func (m *FontMetrics) Width(font Font, text string, size float64) float64 {
	if text == "" {
		return 0
	}
	m.pdf.SetFont(fontFamily, font.style(), size)
	return m.pdf.GetStringWidth(m.translate(text))
}
