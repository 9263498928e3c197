package report

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// monoMetrics gives every rune the same advance (half the font size) and
// counts measurements.
type monoMetrics struct {
	calls int
}

func (m *monoMetrics) Width(_ Font, text string, size float64) float64 {
	m.calls++
	return float64(utf8.RuneCountInString(text)) * size * 0.5
}

func TestFitUnchanged(t *testing.T) {
	f := NewFitter(&monoMetrics{})

	// 10 runes at size 10 -> 50pt
	got := f.Fit(FontRegular, "Colegiatur", 10, 50)
	if got != "Colegiatur" {
		t.Errorf("Fit() = %q, want unchanged text", got)
	}
}

func TestFitTruncates(t *testing.T) {
	f := NewFitter(&monoMetrics{})

	// 40pt leaves room for 8 runes: 5 of prefix + "..."
	got := f.Fit(FontRegular, "Colegiatura octubre", 10, 40)
	if got != "Coleg..." {
		t.Errorf("Fit() = %q, want %q", got, "Coleg...")
	}
}

func TestFitTrimsTrailingSpace(t *testing.T) {
	f := NewFitter(&monoMetrics{})

	// Longest prefix that fits is "Pago " (5 runes); the space is trimmed.
	got := f.Fit(FontRegular, "Pago de inscripción", 10, 40)
	if got != "Pago..." {
		t.Errorf("Fit() = %q, want %q", got, "Pago...")
	}
}

func TestFitPlaceholder(t *testing.T) {
	f := NewFitter(&monoMetrics{})

	for _, blank := range []string{"", "   ", "\t\n"} {
		if got := f.Fit(FontRegular, blank, 10, 100); got != Placeholder {
			t.Errorf("Fit(%q) = %q, want placeholder %q", blank, got, Placeholder)
		}
	}
}

func TestFitEllipsisOnly(t *testing.T) {
	f := NewFitter(&monoMetrics{})

	// "..." is 15pt at size 10; nothing else fits in 16pt
	if got := f.Fit(FontRegular, "Colegiatura", 10, 16); got != Ellipsis {
		t.Errorf("Fit() = %q, want %q", got, Ellipsis)
	}
	// not even the ellipsis fits
	if got := f.Fit(FontRegular, "Colegiatura", 10, 5); got != Ellipsis {
		t.Errorf("Fit() = %q, want %q", got, Ellipsis)
	}
}

func TestFitSanitizes(t *testing.T) {
	f := NewFitter(&monoMetrics{})

	got := f.Fit(FontRegular, "“Beca” → 50%", 10, 200)
	if got != `"Beca" -> 50%` {
		t.Errorf("Fit() = %q, want sanitized text", got)
	}
}

func TestFitNeverExceedsWidth(t *testing.T) {
	m := &monoMetrics{}
	f := NewFitter(m)

	texts := []string{
		"a",
		"Colegiatura",
		"Pago de colegiatura del mes de octubre correspondiente a primaria",
		"Inscripción · año escolar 2026–2027 “turno matutino”",
		strings.Repeat("x ", 80),
	}
	for _, text := range texts {
		for _, size := range []float64{7, 8, 13} {
			ellipsis := m.Width(FontRegular, Ellipsis, size)
			for width := ellipsis; width < 400; width += 7.3 {
				got := f.Fit(FontRegular, text, size, width)
				if w := m.Width(FontRegular, got, size); w > width {
					t.Fatalf("Fit(%q, %v, %v) = %q with width %v", text, size, width, got, w)
				}
				if got != Sanitize(text) && !strings.HasSuffix(got, Ellipsis) {
					t.Fatalf("Fit(%q, %v, %v) = %q, truncated text lacks ellipsis", text, size, width, got)
				}
			}
		}
	}
}

func TestFitLogarithmicMeasurements(t *testing.T) {
	m := &monoMetrics{}
	f := NewFitter(m)

	text := strings.Repeat("abcdefghij", 100) // 1000 runes
	f.Fit(FontRegular, text, 8, 90)

	// full text + ellipsis + ceil(log2(1000)) measurements
	if m.calls > 2+10 {
		t.Errorf("Fit() made %d measurements, want at most 12", m.calls)
	}
}

func TestFontMetricsMonotonic(t *testing.T) {
	m, err := NewFontMetrics()
	if err != nil {
		t.Fatalf("NewFontMetrics() error = %v", err)
	}

	text := []rune(Sanitize("Pago de inscripción — ciclo 2026/2027 (Ñandú, Müller)"))
	for _, font := range []Font{FontRegular, FontBold} {
		prev := 0.0
		for i := 0; i <= len(text); i++ {
			w := m.Width(font, string(text[:i]), 8)
			if w < prev {
				t.Fatalf("width of prefix %d = %v, shorter than prefix %d = %v", i, w, i-1, prev)
			}
			prev = w
		}
	}
}

func TestFontMetricsScalesWithSize(t *testing.T) {
	m, err := NewFontMetrics()
	if err != nil {
		t.Fatalf("NewFontMetrics() error = %v", err)
	}

	small := m.Width(FontRegular, "Colegiatura", 8)
	large := m.Width(FontRegular, "Colegiatura", 16)
	if small <= 0 || large <= small {
		t.Errorf("Width at 8pt = %v, at 16pt = %v; want positive and growing", small, large)
	}
	if bold := m.Width(FontBold, "Colegiatura", 8); bold <= small {
		t.Errorf("bold width %v not wider than regular %v", bold, small)
	}
}
